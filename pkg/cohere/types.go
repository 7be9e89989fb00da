package cohere

// ChatMessage is one turn of Cohere chat history.
type ChatMessage struct {
	Role    string `json:"role"` // "USER" or "CHATBOT"
	Message string `json:"message"`
}

// ParameterDefinition describes a single tool parameter in Cohere's
// native function-calling format.
type ParameterDefinition struct {
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Tool is a Cohere tool definition.
type Tool struct {
	Name                 string                         `json:"name"`
	Description          string                         `json:"description"`
	ParameterDefinitions map[string]ParameterDefinition `json:"parameter_definitions,omitempty"`
}

// ChatRequest is the payload for the Cohere v1 chat endpoint.
type ChatRequest struct {
	Message     string        `json:"message"`
	ChatHistory []ChatMessage `json:"chat_history,omitempty"`
	Preamble    string        `json:"preamble,omitempty"`
	Model       string        `json:"model,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	Tools       []Tool        `json:"tools,omitempty"`
}

// ToolCall is a tool invocation proposed by the model.
type ToolCall struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
}

// ChatResponse is the Cohere v1 chat response.
type ChatResponse struct {
	Text         string     `json:"text"`
	GenerationID string     `json:"generation_id,omitempty"`
	FinishReason string     `json:"finish_reason,omitempty"`
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
}
