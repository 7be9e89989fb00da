package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-chatbot/internal/agent/orchestrator"
	tgDelivery "todo-chatbot/internal/chat/delivery/telegram"
	"todo-chatbot/internal/middleware"
	"todo-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	orchestrator *orchestrator.Orchestrator
	middleware   middleware.Middleware

	// Telegram webhook
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Orchestrator *orchestrator.Orchestrator
	Middleware   middleware.Middleware

	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		orchestrator:    cfg.Orchestrator,
		middleware:      cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.orchestrator == nil {
		return errors.New("orchestrator is required")
	}
	return nil
}
