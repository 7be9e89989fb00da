package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"todo-chatbot/internal/conversation/repository"
	"todo-chatbot/internal/model"
)

// Repository is an in-memory ConversationRepository with UUID session
// IDs. Safe for concurrent use.
type Repository struct {
	mu            sync.RWMutex
	conversations map[string]model.Conversation
	messages      map[string][]model.ChatMessage
}

var _ repository.ConversationRepository = (*Repository)(nil)

// New creates an empty in-memory conversation repository.
func New() *Repository {
	return &Repository{
		conversations: make(map[string]model.Conversation),
		messages:      make(map[string][]model.ChatMessage),
	}
}

// CreateConversation inserts a new conversation and assigns its ID.
func (r *Repository) CreateConversation(ctx context.Context, opt repository.CreateConversationOptions) (model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	conv := model.Conversation{
		ID:        uuid.New().String(),
		Title:     opt.Title,
		UserID:    opt.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.conversations[conv.ID] = conv

	return conv, nil
}

// GetOneConversation fetches a conversation by id and owner. Returns a
// zero Conversation with a nil error when no match exists.
func (r *Repository) GetOneConversation(ctx context.Context, opt repository.GetOneConversationOptions) (model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.conversations[opt.ID]
	if !ok || conv.UserID != opt.UserID {
		return model.Conversation{}, nil
	}
	return conv, nil
}

// ListConversations returns the owner's conversations, newest first.
func (r *Repository) ListConversations(ctx context.Context, opt repository.ListConversationsOptions) ([]model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Conversation, 0)
	for _, conv := range r.conversations {
		if conv.UserID == opt.UserID {
			out = append(out, conv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

// CreateMessage appends a message to a conversation. Returns
// ErrConversationNotFound for an unknown conversation.
func (r *Repository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[opt.ConversationID]
	if !ok {
		return model.ChatMessage{}, repository.ErrConversationNotFound
	}

	msg := model.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: opt.ConversationID,
		Role:           opt.Role,
		Content:        opt.Content,
		CreatedAt:      time.Now(),
	}
	r.messages[opt.ConversationID] = append(r.messages[opt.ConversationID], msg)

	conv.UpdatedAt = msg.CreatedAt
	r.conversations[conv.ID] = conv

	return msg, nil
}

// ListMessages returns a conversation's messages oldest first. A
// positive Limit keeps only the most recent Limit messages.
func (r *Repository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.messages[opt.ConversationID]
	if opt.Limit > 0 && len(msgs) > opt.Limit {
		msgs = msgs[len(msgs)-opt.Limit:]
	}

	out := make([]model.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}
