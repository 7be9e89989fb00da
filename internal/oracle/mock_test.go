package oracle

import (
	"context"
	"strings"
	"testing"
	"time"

	"todo-chatbot/internal/intent"
	pkgLog "todo-chatbot/pkg/log"
)

func newTestMock() *MockOracle {
	now := func() time.Time {
		return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	}
	return NewMock(intent.NewWithClock(now), pkgLog.NewNop())
}

func chatOnce(t *testing.T, o *MockOracle, text string) *Reply {
	t.Helper()
	reply, err := o.Chat(context.Background(), &Request{
		Messages: []Message{{Role: RoleUser, Content: text}},
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	return reply
}

func TestMockOracle_AddTask(t *testing.T) {
	o := newTestMock()
	reply := chatOnce(t, o, "Add a task to buy groceries")

	if len(reply.ToolCalls) != 1 {
		t.Fatalf("tool calls = %d, want 1", len(reply.ToolCalls))
	}
	tc := reply.ToolCalls[0]
	if tc.Name != "add_task" {
		t.Errorf("tool = %q, want add_task", tc.Name)
	}
	if got := tc.Parameters["title"]; got != "to buy groceries" {
		t.Errorf("title = %v, want %q", got, "to buy groceries")
	}
	if !strings.Contains(reply.Text, "to buy groceries") {
		t.Errorf("text %q should mention the title", reply.Text)
	}
	if reply.FinishReason != "COMPLETE" {
		t.Errorf("finish reason = %q, want COMPLETE", reply.FinishReason)
	}
}

func TestMockOracle_ListTasks(t *testing.T) {
	o := newTestMock()
	reply := chatOnce(t, o, "Show my pending tasks")

	if len(reply.ToolCalls) != 1 || reply.ToolCalls[0].Name != "list_tasks" {
		t.Fatalf("tool calls = %+v, want one list_tasks", reply.ToolCalls)
	}
	if got := reply.ToolCalls[0].Parameters["status"]; got != "pending" {
		t.Errorf("status = %v, want pending", got)
	}
	if !strings.Contains(reply.Text, "pending") {
		t.Errorf("text %q should mention pending", reply.Text)
	}
}

func TestMockOracle_CompleteTask(t *testing.T) {
	o := newTestMock()
	reply := chatOnce(t, o, "Mark task 4 as done")

	if len(reply.ToolCalls) != 1 || reply.ToolCalls[0].Name != "complete_task" {
		t.Fatalf("tool calls = %+v, want one complete_task", reply.ToolCalls)
	}
	params := reply.ToolCalls[0].Parameters
	if got := params["task_id"]; got != int64(4) {
		t.Errorf("task_id = %v, want 4", got)
	}
	if got := params["completed"]; got != true {
		t.Errorf("completed = %v, want true", got)
	}
}

func TestMockOracle_DeleteTask(t *testing.T) {
	o := newTestMock()
	reply := chatOnce(t, o, "Task 2 delete karo")

	if len(reply.ToolCalls) != 1 || reply.ToolCalls[0].Name != "delete_task" {
		t.Fatalf("tool calls = %+v, want one delete_task", reply.ToolCalls)
	}
	if got := reply.ToolCalls[0].Parameters["task_id"]; got != int64(2) {
		t.Errorf("task_id = %v, want 2", got)
	}
}

func TestMockOracle_UpdateTaskFlattensFields(t *testing.T) {
	o := newTestMock()
	reply := chatOnce(t, o, "Update task 3 title to call the bank")

	if len(reply.ToolCalls) != 1 || reply.ToolCalls[0].Name != "update_task" {
		t.Fatalf("tool calls = %+v, want one update_task", reply.ToolCalls)
	}
	params := reply.ToolCalls[0].Parameters
	if got := params["task_id"]; got != int64(3) {
		t.Errorf("task_id = %v, want 3", got)
	}
	if _, ok := params["priority"]; !ok {
		t.Errorf("params should carry flattened priority field, got %v", params)
	}
	if _, ok := params["fields"]; ok {
		t.Errorf("params should not keep the nested fields map, got %v", params)
	}
}

func TestMockOracle_GeneralNeverEmpty(t *testing.T) {
	o := newTestMock()
	for _, msg := range []string{
		"hello there",
		"what can you do",
		"the weather is nice",
	} {
		t.Run(msg, func(t *testing.T) {
			reply := chatOnce(t, o, msg)
			if len(reply.ToolCalls) != 0 {
				t.Errorf("tool calls = %+v, want none", reply.ToolCalls)
			}
			if strings.TrimSpace(reply.Text) == "" {
				t.Errorf("reply text should never be empty")
			}
		})
	}
}
