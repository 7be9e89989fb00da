package oracle

import (
	"context"
	"fmt"

	"todo-chatbot/internal/agent"
	"todo-chatbot/pkg/cohere"
	pkgLog "todo-chatbot/pkg/log"
)

// CohereOracle adapts the Cohere chat API. A leading system message
// becomes the preamble; the last user message is the prompt and the
// rest become chat history.
type CohereOracle struct {
	client *cohere.Client
	l      pkgLog.Logger
}

// NewCohere creates a Cohere-backed oracle.
func NewCohere(client *cohere.Client, l pkgLog.Logger) *CohereOracle {
	return &CohereOracle{client: client, l: l}
}

// Name implements Oracle.
func (o *CohereOracle) Name() string {
	return "cohere"
}

// Chat implements Oracle.
func (o *CohereOracle) Chat(ctx context.Context, req *Request) (*Reply, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("empty message list")
	}

	chatReq := &cohere.ChatRequest{
		Temperature: req.Temperature,
		Tools:       toCohereTools(req.Tools),
	}

	messages := req.Messages
	if messages[0].Role == RoleSystem {
		chatReq.Preamble = messages[0].Content
		messages = messages[1:]
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("no user message")
	}

	chatReq.Message = messages[len(messages)-1].Content
	for _, msg := range messages[:len(messages)-1] {
		role := "CHATBOT"
		if msg.Role == RoleUser {
			role = "USER"
		}
		chatReq.ChatHistory = append(chatReq.ChatHistory, cohere.ChatMessage{
			Role:    role,
			Message: msg.Content,
		})
	}

	resp, err := o.client.Chat(ctx, chatReq)
	if err != nil {
		o.l.Errorf(ctx, "cohere chat failed: %v", err)
		return nil, err
	}

	reply := &Reply{
		Text:         resp.Text,
		FinishReason: resp.FinishReason,
	}
	for _, tc := range resp.ToolCalls {
		reply.ToolCalls = append(reply.ToolCalls, agent.ToolCall{
			Name:       tc.Name,
			Parameters: tc.Parameters,
		})
	}
	return reply, nil
}

func toCohereTools(defs []agent.Definition) []cohere.Tool {
	tools := make([]cohere.Tool, 0, len(defs))
	for _, def := range defs {
		tool := cohere.Tool{
			Name:                 def.Name,
			Description:          def.Description,
			ParameterDefinitions: make(map[string]cohere.ParameterDefinition, len(def.ParameterDefinitions)),
		}
		for name, pd := range def.ParameterDefinitions {
			tool.ParameterDefinitions[name] = cohere.ParameterDefinition{
				Type:        pd.Type,
				Required:    pd.Required,
				Description: pd.Description,
			}
		}
		tools = append(tools, tool)
	}
	return tools
}
