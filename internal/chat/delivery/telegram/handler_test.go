package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"todo-chatbot/internal/agent/orchestrator"
	"todo-chatbot/internal/model"
	pkgLog "todo-chatbot/pkg/log"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newFakeSender() *fakeSender {
	return &fakeSender{done: make(chan struct{}, 10)}
}

func (f *fakeSender) SendMessage(chatID int64, text string) error {
	return f.SendMessageWithMode(chatID, text, "")
}

func (f *fakeSender) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	f.mu.Lock()
	f.sent = append(f.sent, text)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeSender) wait(t *testing.T) string {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a telegram reply")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

type fakeProcessor struct {
	mu    sync.Mutex
	calls []model.Scope
	out   orchestrator.ConversationOutput
}

func (f *fakeProcessor) RunConversation(ctx context.Context, sc model.Scope, userMessage, conversationTitle string) (orchestrator.ConversationOutput, error) {
	f.mu.Lock()
	f.calls = append(f.calls, sc)
	f.mu.Unlock()
	return f.out, nil
}

func postUpdate(t *testing.T, h Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.HandleWebhook(c)
	return w
}

func TestHandleWebhook_RepliesWithResponseText(t *testing.T) {
	sender := newFakeSender()
	proc := &fakeProcessor{out: orchestrator.ConversationOutput{
		ProcessOutput: orchestrator.ProcessOutput{ResponseText: "Task 'buy milk' has been added"},
	}}
	h := New(pkgLog.NewNop(), sender, proc)

	w := postUpdate(t, h, `{"update_id":1,"message":{"message_id":1,"from":{"id":42,"username":"tester"},"chat":{"id":42,"type":"private"},"text":"Add a task to buy milk"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data["status"] != "accepted" {
		t.Errorf("status = %q, want accepted", resp.Data["status"])
	}

	if got := sender.wait(t); got != "Task 'buy milk' has been added" {
		t.Errorf("reply = %q", got)
	}

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.calls) != 1 || proc.calls[0].UserID != "telegram_42" {
		t.Errorf("calls = %+v, want one with telegram_42 scope", proc.calls)
	}
}

func TestHandleWebhook_StartCommand(t *testing.T) {
	sender := newFakeSender()
	proc := &fakeProcessor{}
	h := New(pkgLog.NewNop(), sender, proc)

	postUpdate(t, h, `{"update_id":2,"message":{"message_id":2,"from":{"id":7},"chat":{"id":7,"type":"private"},"text":"/start"}}`)

	if got := sender.wait(t); got != startReply {
		t.Errorf("reply = %q, want the start text", got)
	}
	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.calls) != 0 {
		t.Error("commands must not reach the orchestrator")
	}
}

func TestHandleWebhook_IgnoresNonMessageUpdates(t *testing.T) {
	sender := newFakeSender()
	h := New(pkgLog.NewNop(), sender, &fakeProcessor{})

	w := postUpdate(t, h, `{"update_id":3}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Data map[string]string `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data["status"] != "ignored" {
		t.Errorf("status = %q, want ignored", resp.Data["status"])
	}
}

func TestHandleWebhook_BadPayload(t *testing.T) {
	h := New(pkgLog.NewNop(), newFakeSender(), &fakeProcessor{})

	w := postUpdate(t, h, `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
