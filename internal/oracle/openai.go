package oracle

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tidwall/gjson"

	"todo-chatbot/internal/agent"
	pkgLog "todo-chatbot/pkg/log"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIOracle adapts the OpenAI chat completions API.
type OpenAIOracle struct {
	client openai.Client
	model  string
	l      pkgLog.Logger
}

// NewOpenAI creates an OpenAI-backed oracle. An empty model selects the
// default.
func NewOpenAI(apiKey, model string, l pkgLog.Logger) *OpenAIOracle {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIOracle{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		l:      l,
	}
}

// Name implements Oracle.
func (o *OpenAIOracle) Name() string {
	return "openai"
}

// Chat implements Oracle.
func (o *OpenAIOracle) Chat(ctx context.Context, req *Request) (*Reply, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: openai.Float(req.Temperature),
	}
	if len(req.Tools) > 0 {
		params.Tools = toOpenAITools(req.Tools)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		o.l.Errorf(ctx, "openai chat failed: %v", err)
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	choice := resp.Choices[0]
	reply := &Reply{
		Text:         choice.Message.Content,
		FinishReason: string(choice.FinishReason),
	}
	for _, tc := range choice.Message.ToolCalls {
		reply.ToolCalls = append(reply.ToolCalls, agent.ToolCall{
			Name:       tc.Function.Name,
			Parameters: parseToolArguments(tc.Function.Arguments),
		})
	}
	return reply, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}

func toOpenAITools(defs []agent.Definition) []openai.ChatCompletionToolUnionParam {
	tools := make([]openai.ChatCompletionToolUnionParam, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        def.Name,
			Description: openai.String(def.Description),
			Parameters:  openai.FunctionParameters(def.Schema),
		}))
	}
	return tools
}

// parseToolArguments decodes the model's argument JSON. Models
// occasionally emit malformed or non-object payloads; those degrade to
// an empty argument map and schema validation rejects the call later.
func parseToolArguments(raw string) map[string]any {
	if !gjson.Valid(raw) {
		return map[string]any{}
	}
	parsed := gjson.Parse(raw)
	if m, ok := parsed.Value().(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
