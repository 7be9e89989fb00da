package tools

import (
	"context"
	"strings"
	"testing"

	"todo-chatbot/internal/model"
	"todo-chatbot/internal/task/repository/memory"
	pkgLog "todo-chatbot/pkg/log"
)

func TestAddTaskTool(t *testing.T) {
	repo := memory.New()
	tool := NewAddTaskTool(repo, nil, pkgLog.NewNop())
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("creates task", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"title":    "buy groceries",
			"priority": "high",
			"due_date": "2025-06-16",
		}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !result.Success {
			t.Fatalf("Execute() failed: %s", result.Message)
		}
		if result.TaskID != 1 {
			t.Errorf("TaskID = %d, want 1", result.TaskID)
		}
		if result.Message != "Task 'buy groceries' has been added successfully" {
			t.Errorf("message = %q", result.Message)
		}
	})

	t.Run("rejects empty title", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{"title": ""}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Success {
			t.Error("empty title must fail")
		}
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"title": strings.Repeat("x", maxTitleLength+1),
		}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Success {
			t.Error("overlong title must fail")
		}
	})

	t.Run("rejects malformed due date", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"title":    "ok",
			"due_date": "next tuesday",
		}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Success {
			t.Error("malformed due date must fail")
		}
		if !strings.Contains(result.Message, "invalid due date") {
			t.Errorf("message = %q", result.Message)
		}
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"title":    "ok",
			"priority": "urgent",
		}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Success {
			t.Error("unknown priority must fail")
		}
	})
}

func TestListTasksTool_ScopedAndFiltered(t *testing.T) {
	repo := memory.New()
	l := pkgLog.NewNop()
	add := NewAddTaskTool(repo, nil, l)
	list := NewListTasksTool(repo, l)
	complete := NewCompleteTaskTool(repo, l)
	ctx := context.Background()
	owner := model.Scope{UserID: "user-1"}
	other := model.Scope{UserID: "user-2"}

	for _, title := range []string{"buy milk", "call mom", "water plants"} {
		if result, err := add.Execute(ctx, map[string]interface{}{"title": title}, owner); err != nil || !result.Success {
			t.Fatalf("seed add failed: %v %s", err, result.Message)
		}
	}
	if result, err := complete.Execute(ctx, map[string]interface{}{"task_id": int64(2)}, owner); err != nil || !result.Success {
		t.Fatalf("seed complete failed: %v %s", err, result.Message)
	}

	t.Run("all", func(t *testing.T) {
		result, err := list.Execute(ctx, map[string]interface{}{}, owner)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(result.Tasks) != 3 {
			t.Errorf("len(Tasks) = %d, want 3", len(result.Tasks))
		}
		if result.Message != "Found 3 task(s)" {
			t.Errorf("message = %q", result.Message)
		}
	})

	t.Run("pending", func(t *testing.T) {
		result, err := list.Execute(ctx, map[string]interface{}{"status": "pending"}, owner)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(result.Tasks) != 2 {
			t.Errorf("len(Tasks) = %d, want 2", len(result.Tasks))
		}
	})

	t.Run("completed", func(t *testing.T) {
		result, err := list.Execute(ctx, map[string]interface{}{"status": "completed"}, owner)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(result.Tasks) != 1 || result.Tasks[0].Title != "call mom" {
			t.Errorf("Tasks = %+v, want just 'call mom'", result.Tasks)
		}
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		result, err := list.Execute(ctx, map[string]interface{}{}, other)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(result.Tasks) != 0 {
			t.Errorf("len(Tasks) = %d, want 0", len(result.Tasks))
		}
	})
}

func TestCompleteTaskTool(t *testing.T) {
	repo := memory.New()
	l := pkgLog.NewNop()
	add := NewAddTaskTool(repo, nil, l)
	complete := NewCompleteTaskTool(repo, l)
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if result, err := add.Execute(ctx, map[string]interface{}{"title": "buy milk"}, sc); err != nil || !result.Success {
		t.Fatalf("seed add failed: %v %s", err, result.Message)
	}

	t.Run("marks completed", func(t *testing.T) {
		result, err := complete.Execute(ctx, map[string]interface{}{"task_id": int64(1)}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Message != "Task 'buy milk' has been marked as completed" {
			t.Errorf("message = %q", result.Message)
		}
	})

	t.Run("marks pending again", func(t *testing.T) {
		result, err := complete.Execute(ctx, map[string]interface{}{"task_id": int64(1), "completed": false}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Message != "Task 'buy milk' has been marked as pending" {
			t.Errorf("message = %q", result.Message)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		result, err := complete.Execute(ctx, map[string]interface{}{"task_id": int64(99)}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Success || result.Message != "Task 99 not found" {
			t.Errorf("result = %+v, want not-found failure", result)
		}
	})
}

func TestDeleteTaskTool_NotIdempotent(t *testing.T) {
	repo := memory.New()
	l := pkgLog.NewNop()
	add := NewAddTaskTool(repo, nil, l)
	del := NewDeleteTaskTool(repo, l)
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if result, err := add.Execute(ctx, map[string]interface{}{"title": "buy milk"}, sc); err != nil || !result.Success {
		t.Fatalf("seed add failed: %v %s", err, result.Message)
	}

	first, err := del.Execute(ctx, map[string]interface{}{"task_id": int64(1)}, sc)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !first.Success || first.Message != "Task 'buy milk' has been deleted successfully" {
		t.Errorf("first delete = %+v", first)
	}

	second, err := del.Execute(ctx, map[string]interface{}{"task_id": int64(1)}, sc)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if second.Success || second.Message != "Task 1 not found" {
		t.Errorf("second delete = %+v, want not-found failure", second)
	}
}

func TestUpdateTaskTool_PartialUpdate(t *testing.T) {
	repo := memory.New()
	l := pkgLog.NewNop()
	add := NewAddTaskTool(repo, nil, l)
	update := NewUpdateTaskTool(repo, l)
	list := NewListTasksTool(repo, l)
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if result, err := add.Execute(ctx, map[string]interface{}{"title": "buy milk", "priority": "low"}, sc); err != nil || !result.Success {
		t.Fatalf("seed add failed: %v %s", err, result.Message)
	}

	result, err := update.Execute(ctx, map[string]interface{}{
		"task_id":  int64(1),
		"priority": "high",
	}, sc)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("update failed: %s", result.Message)
	}

	listed, err := list.Execute(ctx, map[string]interface{}{}, sc)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	task := listed.Tasks[0]
	if task.Title != "buy milk" {
		t.Errorf("title = %q, want unchanged", task.Title)
	}
	if task.Priority != "high" {
		t.Errorf("priority = %q, want high", task.Priority)
	}

	t.Run("unknown task", func(t *testing.T) {
		result, err := update.Execute(ctx, map[string]interface{}{"task_id": int64(5), "priority": "low"}, sc)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Success || result.Message != "Task 5 not found" {
			t.Errorf("result = %+v, want not-found failure", result)
		}
	})
}
