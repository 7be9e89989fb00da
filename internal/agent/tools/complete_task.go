package tools

import (
	"context"
	"fmt"

	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/model"
	"todo-chatbot/internal/task/repository"
	pkgLog "todo-chatbot/pkg/log"
)

// CompleteTaskTool sets the completion flag on the caller's task.
type CompleteTaskTool struct {
	repo repository.TaskRepository
	l    pkgLog.Logger
}

func NewCompleteTaskTool(repo repository.TaskRepository, l pkgLog.Logger) *CompleteTaskTool {
	return &CompleteTaskTool{repo: repo, l: l}
}

func (t *CompleteTaskTool) Name() string {
	return "complete_task"
}

func (t *CompleteTaskTool) Description() string {
	return "Mark a task as done or undone"
}

func (t *CompleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "integer",
				"description": "ID of the task to mark",
			},
			"completed": map[string]interface{}{
				"type":        "boolean",
				"description": "New completion state (defaults to true)",
			},
		},
		"required": []string{"task_id"},
	}
}

func (t *CompleteTaskTool) Execute(ctx context.Context, args map[string]interface{}, sc model.Scope) (agent.ToolResult, error) {
	taskID, _ := args["task_id"].(int64)

	completed := true
	if v, ok := args["completed"].(bool); ok {
		completed = v
	}

	existing, err := t.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: taskID, OwnerID: sc.UserID})
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("failed to fetch task: %w", err)
	}
	if existing.ID == 0 {
		return agent.Failure(fmt.Sprintf("Task %d not found", taskID)), nil
	}

	updated, err := t.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:        taskID,
		OwnerID:   sc.UserID,
		Completed: &completed,
	})
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("failed to update task: %w", err)
	}

	state := "completed"
	if !completed {
		state = "pending"
	}

	return agent.ToolResult{
		Success: true,
		TaskID:  updated.ID,
		Title:   updated.Title,
		Message: fmt.Sprintf("Task '%s' has been marked as %s", updated.Title, state),
	}, nil
}

var _ agent.Tool = (*CompleteTaskTool)(nil)
