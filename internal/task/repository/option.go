package repository

import (
	"time"

	"todo-chatbot/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	OwnerID     string
	Title       string
	Description string
	Priority    model.Priority
	DueDate     *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// ID and OwnerID are applied as AND conditions.
type GetOneTaskOptions struct {
	ID      int64
	OwnerID string
}

// TaskStatus filters a listing by completion state.
type TaskStatus string

const (
	StatusAll       TaskStatus = "all"
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// ListTasksOptions holds filter parameters for listing an owner's Tasks.
type ListTasksOptions struct {
	OwnerID string
	Status  TaskStatus
}

// UpdateTaskOptions holds parameters for a partial update of an existing
// Task. Nil pointer fields are left untouched.
type UpdateTaskOptions struct {
	ID        int64
	OwnerID   string
	Title     *string
	Priority  *model.Priority
	DueDate   *time.Time
	Completed *bool
}

// DeleteTaskOptions holds parameters for removing a Task.
type DeleteTaskOptions struct {
	ID      int64
	OwnerID string
}
