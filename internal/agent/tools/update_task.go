package tools

import (
	"context"
	"fmt"

	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/model"
	"todo-chatbot/internal/task/repository"
	pkgLog "todo-chatbot/pkg/log"
)

// UpdateTaskTool applies a partial field update to the caller's task.
type UpdateTaskTool struct {
	repo repository.TaskRepository
	l    pkgLog.Logger
}

func NewUpdateTaskTool(repo repository.TaskRepository, l pkgLog.Logger) *UpdateTaskTool {
	return &UpdateTaskTool{repo: repo, l: l}
}

func (t *UpdateTaskTool) Name() string {
	return "update_task"
}

func (t *UpdateTaskTool) Description() string {
	return "Modify existing task details (title, priority, due date)"
}

func (t *UpdateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "integer",
				"description": "ID of the task to update",
			},
			"title": map[string]interface{}{
				"type":        "string",
				"description": "New title for the task",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"description": "New priority (low, medium, high)",
			},
			"due_date": map[string]interface{}{
				"type":        "string",
				"description": "New due date in ISO format (YYYY-MM-DD)",
			},
		},
		"required": []string{"task_id"},
	}
}

type updateTaskInput struct {
	TaskID   int64  `json:"task_id"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date"`
}

func (t *UpdateTaskTool) Execute(ctx context.Context, args map[string]interface{}, sc model.Scope) (agent.ToolResult, error) {
	var input updateTaskInput
	if err := decodeArgs(args, &input); err != nil {
		return agent.ToolResult{}, err
	}

	existing, err := t.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: input.TaskID, OwnerID: sc.UserID})
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("failed to fetch task: %w", err)
	}
	if existing.ID == 0 {
		return agent.Failure(fmt.Sprintf("Task %d not found", input.TaskID)), nil
	}

	opt := repository.UpdateTaskOptions{ID: input.TaskID, OwnerID: sc.UserID}

	if input.Title != "" {
		if len([]rune(input.Title)) > maxTitleLength {
			return agent.Failure(fmt.Sprintf("title exceeds %d characters", maxTitleLength)), nil
		}
		opt.Title = &input.Title
	}
	if input.Priority != "" {
		priority := model.Priority(input.Priority)
		if !model.ValidPriority(priority) {
			return agent.Failure(fmt.Sprintf("invalid priority: %s", input.Priority)), nil
		}
		opt.Priority = &priority
	}
	if input.DueDate != "" {
		parsed, parseErr := parseDueDate(input.DueDate)
		if parseErr != nil {
			return agent.Failure(fmt.Sprintf("invalid due date: %s", input.DueDate)), nil
		}
		opt.DueDate = &parsed
	}

	updated, err := t.repo.UpdateTask(ctx, opt)
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("failed to update task: %w", err)
	}

	return agent.ToolResult{
		Success: true,
		TaskID:  updated.ID,
		Title:   updated.Title,
		Message: fmt.Sprintf("Task '%s' has been updated successfully", updated.Title),
	}, nil
}

var _ agent.Tool = (*UpdateTaskTool)(nil)
