package repository

// CreateConversationOptions carries the fields for a new conversation.
type CreateConversationOptions struct {
	UserID string
	Title  string
}

// GetOneConversationOptions locates one conversation for an owner.
type GetOneConversationOptions struct {
	ID     string
	UserID string
}

// ListConversationsOptions filters conversations by owner, newest first.
type ListConversationsOptions struct {
	UserID string
}

// CreateMessageOptions appends one message to a conversation.
type CreateMessageOptions struct {
	ConversationID string
	Role           string
	Content        string
}

// ListMessagesOptions returns messages oldest first. A positive Limit
// keeps only the most recent Limit messages, still oldest first.
type ListMessagesOptions struct {
	ConversationID string
	Limit          int
}
