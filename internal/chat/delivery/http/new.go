package http

import (
	"context"

	"todo-chatbot/internal/agent/orchestrator"
	"todo-chatbot/internal/model"
	pkgLog "todo-chatbot/pkg/log"
)

// Processor is the conversational engine behind the chat endpoint.
type Processor interface {
	ProcessMessage(ctx context.Context, sc model.Scope, userMessage, conversationID string) orchestrator.ProcessOutput
	RunConversation(ctx context.Context, sc model.Scope, userMessage, conversationTitle string) (orchestrator.ConversationOutput, error)
}

type handler struct {
	l    pkgLog.Logger
	orch Processor
}

// New creates the HTTP handler for the chat domain.
func New(l pkgLog.Logger, orch Processor) *handler {
	return &handler{
		l:    l,
		orch: orch,
	}
}
