package model

import "time"

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// Conversation is a chat session owned by a single user.
type Conversation struct {
	ID        string
	Title     string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is one persisted turn of a conversation.
type ChatMessage struct {
	ID             string
	ConversationID string
	Role           string
	Content        string
	CreatedAt      time.Time
}
