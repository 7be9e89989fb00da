package http

import (
	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/agent/orchestrator"
	"todo-chatbot/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message           string `json:"message" binding:"required"`
	UserID            string `json:"user_id" binding:"required"`
	Username          string `json:"username"`
	ConversationID    string `json:"conversation_id"`
	ConversationTitle string `json:"conversation_title"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) scope() model.Scope {
	return model.Scope{
		UserID:   r.UserID,
		Username: r.Username,
	}
}

// --- Response DTOs ---

type toolResultResp struct {
	ToolName  string           `json:"tool_name"`
	Arguments map[string]any   `json:"arguments"`
	Result    agent.ToolResult `json:"result"`
}

type chatResp struct {
	ResponseText      string           `json:"response_text"`
	ToolResults       []toolResultResp `json:"tool_results"`
	HasToolsExecuted  bool             `json:"has_tools_executed"`
	UserID            string           `json:"user_id"`
	ConversationID    string           `json:"conversation_id"`
	ConversationTitle string           `json:"conversation_title,omitempty"`
}

func newToolResults(results []agent.ExecutedTool) []toolResultResp {
	out := make([]toolResultResp, len(results))
	for i, tr := range results {
		out[i] = toolResultResp{
			ToolName:  tr.ToolName,
			Arguments: tr.Arguments,
			Result:    tr.Result,
		}
	}
	return out
}

func (h *handler) newChatResp(out orchestrator.ProcessOutput, title string) chatResp {
	return chatResp{
		ResponseText:      out.ResponseText,
		ToolResults:       newToolResults(out.ToolResults),
		HasToolsExecuted:  out.HasToolsExecuted,
		UserID:            out.UserID,
		ConversationID:    out.ConversationID,
		ConversationTitle: title,
	}
}
