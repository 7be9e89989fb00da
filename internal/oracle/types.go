package oracle

import (
	"context"

	"todo-chatbot/internal/agent"
)

// Message roles in a chat exchange.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation passed to the oracle.
type Message struct {
	Role    string
	Content string
}

// Request carries everything the oracle needs for one chat turn.
type Request struct {
	Messages    []Message
	Tools       []agent.Definition
	Temperature float64
}

// Reply is the oracle's answer: conversational text plus zero or more
// proposed tool calls.
type Reply struct {
	Text         string
	ToolCalls    []agent.ToolCall
	FinishReason string
}

// Oracle is a chat model that can propose tool calls. Implementations
// wrap a remote provider or run fully offline.
type Oracle interface {
	Name() string
	Chat(ctx context.Context, req *Request) (*Reply, error)
}
