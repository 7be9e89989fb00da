package tools

import (
	"context"
	"fmt"

	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/model"
	"todo-chatbot/internal/task/repository"
	pkgLog "todo-chatbot/pkg/log"
)

// ListTasksTool returns the caller's tasks filtered by status.
type ListTasksTool struct {
	repo repository.TaskRepository
	l    pkgLog.Logger
}

func NewListTasksTool(repo repository.TaskRepository, l pkgLog.Logger) *ListTasksTool {
	return &ListTasksTool{repo: repo, l: l}
}

func (t *ListTasksTool) Name() string {
	return "list_tasks"
}

func (t *ListTasksTool) Description() string {
	return "Show the user's tasks (all, completed, or pending)"
}

func (t *ListTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"status": map[string]interface{}{
				"type":        "string",
				"description": "Filter by status: all, pending, or completed",
			},
		},
		"required": []string{},
	}
}

func (t *ListTasksTool) Execute(ctx context.Context, args map[string]interface{}, sc model.Scope) (agent.ToolResult, error) {
	status := repository.StatusAll
	switch args["status"] {
	case "pending":
		status = repository.StatusPending
	case "completed":
		status = repository.StatusCompleted
	}

	tasks, _, err := t.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID: sc.UserID,
		Status:  status,
	})
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	summaries := make([]agent.TaskSummary, 0, len(tasks))
	for _, task := range tasks {
		summary := agent.TaskSummary{
			ID:        task.ID,
			Title:     task.Title,
			Completed: task.Completed,
			Priority:  string(task.Priority),
		}
		if task.DueDate != nil {
			summary.DueDate = task.DueDate.Format("2006-01-02")
		}
		summaries = append(summaries, summary)
	}

	return agent.ToolResult{
		Success: true,
		Tasks:   summaries,
		Message: fmt.Sprintf("Found %d task(s)", len(summaries)),
	}, nil
}

var _ agent.Tool = (*ListTasksTool)(nil)
