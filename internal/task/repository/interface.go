package repository

import (
	"context"

	"todo-chatbot/internal/model"
)

// TaskRepository defines all data access methods for the Task entity.
// Every method is scoped to an owner; implementations report "not found"
// as a zero-value Task with a nil error, never as a raised error.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
}
