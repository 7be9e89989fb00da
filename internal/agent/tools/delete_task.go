package tools

import (
	"context"
	"errors"
	"fmt"

	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/model"
	"todo-chatbot/internal/task/repository"
	pkgLog "todo-chatbot/pkg/log"
)

// DeleteTaskTool removes the caller's task.
type DeleteTaskTool struct {
	repo repository.TaskRepository
	l    pkgLog.Logger
}

func NewDeleteTaskTool(repo repository.TaskRepository, l pkgLog.Logger) *DeleteTaskTool {
	return &DeleteTaskTool{repo: repo, l: l}
}

func (t *DeleteTaskTool) Name() string {
	return "delete_task"
}

func (t *DeleteTaskTool) Description() string {
	return "Remove a task from the user's list"
}

func (t *DeleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "integer",
				"description": "ID of the task to delete",
			},
		},
		"required": []string{"task_id"},
	}
}

func (t *DeleteTaskTool) Execute(ctx context.Context, args map[string]interface{}, sc model.Scope) (agent.ToolResult, error) {
	taskID, _ := args["task_id"].(int64)

	existing, err := t.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: taskID, OwnerID: sc.UserID})
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("failed to fetch task: %w", err)
	}
	if existing.ID == 0 {
		return agent.Failure(fmt.Sprintf("Task %d not found", taskID)), nil
	}

	if err := t.repo.DeleteTask(ctx, repository.DeleteTaskOptions{ID: taskID, OwnerID: sc.UserID}); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return agent.Failure(fmt.Sprintf("Task %d not found", taskID)), nil
		}
		return agent.ToolResult{}, fmt.Errorf("failed to delete task: %w", err)
	}

	return agent.ToolResult{
		Success: true,
		TaskID:  taskID,
		Title:   existing.Title,
		Message: fmt.Sprintf("Task '%s' has been deleted successfully", existing.Title),
	}, nil
}

var _ agent.Tool = (*DeleteTaskTool)(nil)
