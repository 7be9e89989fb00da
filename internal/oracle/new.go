package oracle

import (
	"context"

	"todo-chatbot/internal/intent"
	"todo-chatbot/pkg/cohere"
	pkgLog "todo-chatbot/pkg/log"
)

// Provider identifiers accepted in configuration.
const (
	ProviderCohere = "cohere"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// placeholder key shipped in sample config files; treated as unset.
const placeholderAPIKey = "your-cohere-api-key-here"

// Config selects and configures the oracle provider.
type Config struct {
	Provider string
	APIKey   string
	Model    string
}

// New builds the configured oracle. Whenever the provider is unknown or
// its API key is missing it falls back to the offline mock, so the
// service always starts.
func New(cfg Config, detector *intent.Detector, l pkgLog.Logger) Oracle {
	key := cfg.APIKey
	if key == placeholderAPIKey {
		key = ""
	}

	switch cfg.Provider {
	case ProviderCohere:
		if key != "" {
			return NewCohere(cohere.NewClient(key, cfg.Model), l)
		}
	case ProviderOpenAI:
		if key != "" {
			return NewOpenAI(key, cfg.Model, l)
		}
	}

	if cfg.Provider != ProviderMock && cfg.Provider != "" {
		l.Warnf(context.Background(), "oracle provider %q unavailable, using mock", cfg.Provider)
	}
	return NewMock(detector, l)
}
