package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-chatbot/internal/agent/orchestrator"
	"todo-chatbot/internal/model"
	pkgLog "todo-chatbot/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the outbound Telegram surface the handler needs.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMode(chatID int64, text string, parseMode string) error
}

// Processor is the conversational engine behind the webhook.
type Processor interface {
	RunConversation(ctx context.Context, sc model.Scope, userMessage, conversationTitle string) (orchestrator.ConversationOutput, error)
}

type handler struct {
	l    pkgLog.Logger
	bot  Sender
	orch Processor
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, bot Sender, orch Processor) Handler {
	return &handler{
		l:    l,
		bot:  bot,
		orch: orch,
	}
}
