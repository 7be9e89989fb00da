package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/model"
	"todo-chatbot/internal/task/repository"
	"todo-chatbot/pkg/gcalendar"
	pkgLog "todo-chatbot/pkg/log"
)

const maxTitleLength = 255

// CalendarClient is the optional calendar integration used for due-date
// reminders.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// AddTaskTool creates a new task owned by the caller.
type AddTaskTool struct {
	repo     repository.TaskRepository
	calendar CalendarClient // may be nil
	l        pkgLog.Logger
}

// NewAddTaskTool creates the add_task tool. calendar may be nil when no
// Google Calendar integration is configured.
func NewAddTaskTool(repo repository.TaskRepository, calendar CalendarClient, l pkgLog.Logger) *AddTaskTool {
	return &AddTaskTool{repo: repo, calendar: calendar, l: l}
}

func (t *AddTaskTool) Name() string {
	return "add_task"
}

func (t *AddTaskTool) Description() string {
	return "Add a new task to the user's task list"
}

func (t *AddTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Title of the task",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Optional description of the task",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"description": "Priority of the task (low, medium, high)",
			},
			"due_date": map[string]interface{}{
				"type":        "string",
				"description": "Due date in ISO format (YYYY-MM-DD)",
			},
		},
		"required": []string{"title"},
	}
}

type addTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

func (t *AddTaskTool) Execute(ctx context.Context, args map[string]interface{}, sc model.Scope) (agent.ToolResult, error) {
	var input addTaskInput
	if err := decodeArgs(args, &input); err != nil {
		return agent.ToolResult{}, err
	}

	if input.Title == "" {
		return agent.Failure("title must not be empty"), nil
	}
	if len([]rune(input.Title)) > maxTitleLength {
		return agent.Failure(fmt.Sprintf("title exceeds %d characters", maxTitleLength)), nil
	}

	priority := model.Priority(input.Priority)
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return agent.Failure(fmt.Sprintf("invalid priority: %s", input.Priority)), nil
	}

	// Malformed due dates are rejected outright rather than silently
	// dropped.
	var dueDate *time.Time
	if input.DueDate != "" {
		parsed, err := parseDueDate(input.DueDate)
		if err != nil {
			return agent.Failure(fmt.Sprintf("invalid due date: %s", input.DueDate)), nil
		}
		dueDate = &parsed
	}

	task, err := t.repo.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID:     sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     dueDate,
	})
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("failed to add task: %w", err)
	}

	// Best-effort calendar reminder; a calendar failure never fails the
	// task creation.
	if t.calendar != nil && dueDate != nil {
		if _, calErr := t.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			Summary:     task.Title,
			Description: task.Description,
			Date:        *dueDate,
		}); calErr != nil {
			t.l.Warnf(ctx, "add_task: calendar event for task %d failed: %v", task.ID, calErr)
		}
	}

	return agent.ToolResult{
		Success: true,
		TaskID:  task.ID,
		Title:   task.Title,
		Message: fmt.Sprintf("Task '%s' has been added successfully", task.Title),
	}, nil
}

// decodeArgs round-trips a validated argument map into a typed input
// struct.
func decodeArgs(args map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse arguments: %w", err)
	}
	return nil
}

// parseDueDate accepts a calendar date or a full RFC3339 timestamp.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

var _ agent.Tool = (*AddTaskTool)(nil)
