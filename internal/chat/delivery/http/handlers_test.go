package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/agent/orchestrator"
	"todo-chatbot/internal/model"
	pkgLog "todo-chatbot/pkg/log"
	"todo-chatbot/pkg/response"
)

type fakeProcessor struct {
	lastScope    model.Scope
	lastMessage  string
	lastConvID   string
	lastTitle    string
	processOut   orchestrator.ProcessOutput
	runOut       orchestrator.ConversationOutput
	runErr       error
	processCalls int
	runCalls     int
}

func (f *fakeProcessor) ProcessMessage(ctx context.Context, sc model.Scope, userMessage, conversationID string) orchestrator.ProcessOutput {
	f.processCalls++
	f.lastScope = sc
	f.lastMessage = userMessage
	f.lastConvID = conversationID
	return f.processOut
}

func (f *fakeProcessor) RunConversation(ctx context.Context, sc model.Scope, userMessage, conversationTitle string) (orchestrator.ConversationOutput, error) {
	f.runCalls++
	f.lastScope = sc
	f.lastMessage = userMessage
	f.lastTitle = conversationTitle
	return f.runOut, f.runErr
}

func postChat(t *testing.T, orch Processor, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(pkgLog.NewNop(), orch)
	router := gin.New()
	router.POST("/api/v1/chat", h.Chat)

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeChatResp(t *testing.T, w *httptest.ResponseRecorder) chatResp {
	t.Helper()
	var body struct {
		ErrorCode int      `json:"error_code"`
		Message   string   `json:"message"`
		Data      chatResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ErrorCode != 0 {
		t.Fatalf("error_code = %d, want 0", body.ErrorCode)
	}
	if body.Message != response.MessageSuccess {
		t.Fatalf("message = %q, want %q", body.Message, response.MessageSuccess)
	}
	return body.Data
}

func TestChatNewConversation(t *testing.T) {
	orch := &fakeProcessor{
		runOut: orchestrator.ConversationOutput{
			ProcessOutput: orchestrator.ProcessOutput{
				ResponseText:     "I've added that task for you.\n\n[Task Created] ID: 1 - buy groceries",
				HasToolsExecuted: true,
				UserID:           "user-1",
				ConversationID:   "conv-1",
				ToolResults: []agent.ExecutedTool{
					{
						ToolName:  "add_task",
						Arguments: map[string]any{"title": "buy groceries"},
						Result:    agent.ToolResult{Success: true, Message: "Task 'buy groceries' has been added successfully", TaskID: 1},
					},
				},
			},
			ConversationTitle: "Conversation with add a task to buy gro...",
		},
	}

	w := postChat(t, orch, map[string]any{
		"message":  "add a task to buy groceries",
		"user_id":  "user-1",
		"username": "alice",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if orch.runCalls != 1 || orch.processCalls != 0 {
		t.Fatalf("runCalls = %d, processCalls = %d, want 1 and 0", orch.runCalls, orch.processCalls)
	}
	if orch.lastScope.UserID != "user-1" || orch.lastScope.Username != "alice" {
		t.Errorf("scope = %+v", orch.lastScope)
	}

	resp := decodeChatResp(t, w)
	if resp.ConversationID != "conv-1" {
		t.Errorf("conversation_id = %q, want %q", resp.ConversationID, "conv-1")
	}
	if resp.ConversationTitle != orch.runOut.ConversationTitle {
		t.Errorf("conversation_title = %q", resp.ConversationTitle)
	}
	if !resp.HasToolsExecuted || len(resp.ToolResults) != 1 {
		t.Errorf("tool results = %+v", resp.ToolResults)
	}
	if resp.ToolResults[0].ToolName != "add_task" {
		t.Errorf("tool_name = %q, want add_task", resp.ToolResults[0].ToolName)
	}
}

func TestChatExistingConversation(t *testing.T) {
	orch := &fakeProcessor{
		processOut: orchestrator.ProcessOutput{
			ResponseText:   "Found 0 task(s)\n\nYou don't have any tasks yet.",
			UserID:         "user-2",
			ConversationID: "conv-42",
		},
	}

	w := postChat(t, orch, map[string]any{
		"message":         "show my tasks",
		"user_id":         "user-2",
		"conversation_id": "conv-42",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if orch.processCalls != 1 || orch.runCalls != 0 {
		t.Fatalf("processCalls = %d, runCalls = %d, want 1 and 0", orch.processCalls, orch.runCalls)
	}
	if orch.lastConvID != "conv-42" {
		t.Errorf("conversation_id passed = %q, want conv-42", orch.lastConvID)
	}

	resp := decodeChatResp(t, w)
	if resp.ConversationTitle != "" {
		t.Errorf("conversation_title = %q, want empty for existing conversation", resp.ConversationTitle)
	}
	if resp.ResponseText != orch.processOut.ResponseText {
		t.Errorf("response_text = %q", resp.ResponseText)
	}
}

func TestChatMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing message", body: map[string]any{"user_id": "user-1"}},
		{name: "missing user_id", body: map[string]any{"message": "hello"}},
		{name: "empty body", body: map[string]any{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orch := &fakeProcessor{}
			w := postChat(t, orch, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if orch.processCalls != 0 || orch.runCalls != 0 {
				t.Errorf("orchestrator called on invalid request")
			}
		})
	}
}

func TestChatRunConversationError(t *testing.T) {
	orch := &fakeProcessor{runErr: errors.New("store unavailable")}

	w := postChat(t, orch, map[string]any{
		"message": "add a task",
		"user_id": "user-3",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var body response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ErrorCode != response.InternalServerErrorCode {
		t.Errorf("error_code = %d, want %d", body.ErrorCode, response.InternalServerErrorCode)
	}
	if body.Message != response.DefaultErrorMessage {
		t.Errorf("message = %q, want %q", body.Message, response.DefaultErrorMessage)
	}
}
