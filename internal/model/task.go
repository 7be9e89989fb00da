package model

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single to-do item owned by exactly one user.
// The ID is assigned by the store on creation; OwnerID is immutable after that.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Completed   bool
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
