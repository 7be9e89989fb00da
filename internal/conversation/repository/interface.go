package repository

import (
	"context"

	"todo-chatbot/internal/model"
)

// ConversationRepository defines data access for conversations and their
// messages. GetOneConversation reports "not found" as a zero-value
// Conversation with a nil error.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, opt CreateConversationOptions) (model.Conversation, error)
	GetOneConversation(ctx context.Context, opt GetOneConversationOptions) (model.Conversation, error)
	ListConversations(ctx context.Context, opt ListConversationsOptions) ([]model.Conversation, error)
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.ChatMessage, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.ChatMessage, error)
}
