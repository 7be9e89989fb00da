package orchestrator

import "todo-chatbot/internal/agent"

// ProcessOutput is the result of handling one user message.
type ProcessOutput struct {
	ResponseText     string               `json:"response_text"`
	ToolResults      []agent.ExecutedTool `json:"tool_results"`
	HasToolsExecuted bool                 `json:"has_tools_executed"`
	UserID           string               `json:"user_id"`
	ConversationID   string               `json:"conversation_id,omitempty"`
}

// ConversationOutput extends ProcessOutput with the session record
// created by RunConversation.
type ConversationOutput struct {
	ProcessOutput
	ConversationTitle string `json:"conversation_title"`
}
