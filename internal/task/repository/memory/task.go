package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"todo-chatbot/internal/model"
	"todo-chatbot/internal/task/repository"
)

// Repository is an in-memory TaskRepository with store-assigned
// auto-increment IDs. Safe for concurrent use.
type Repository struct {
	mu     sync.RWMutex
	tasks  map[int64]model.Task
	nextID int64
}

var _ repository.TaskRepository = (*Repository)(nil)

// New creates an empty in-memory task repository.
func New() *Repository {
	return &Repository{
		tasks:  make(map[int64]model.Task),
		nextID: 1,
	}
}

// CreateTask inserts a new task and assigns its ID.
func (r *Repository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	task := model.Task{
		ID:          r.nextID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		Completed:   false,
		OwnerID:     opt.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks[task.ID] = task
	r.nextID++

	return task, nil
}

// GetOneTask fetches a task by id and owner. Returns a zero Task with a
// nil error when no match exists.
func (r *Repository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[opt.ID]
	if !ok || task.OwnerID != opt.OwnerID {
		return model.Task{}, nil
	}
	return task, nil
}

// ListTasks returns the owner's tasks filtered by status, ordered by ID.
func (r *Repository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0)
	for _, task := range r.tasks {
		if task.OwnerID != opt.OwnerID {
			continue
		}
		switch opt.Status {
		case repository.StatusPending:
			if task.Completed {
				continue
			}
		case repository.StatusCompleted:
			if !task.Completed {
				continue
			}
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, len(out), nil
}

// UpdateTask applies a partial update. Returns ErrTaskNotFound when the
// owner has no task with the given id.
func (r *Repository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[opt.ID]
	if !ok || task.OwnerID != opt.OwnerID {
		return model.Task{}, repository.ErrTaskNotFound
	}

	if opt.Title != nil {
		task.Title = *opt.Title
	}
	if opt.Priority != nil {
		task.Priority = *opt.Priority
	}
	if opt.DueDate != nil {
		task.DueDate = opt.DueDate
	}
	if opt.Completed != nil {
		task.Completed = *opt.Completed
	}
	task.UpdatedAt = time.Now()
	r.tasks[opt.ID] = task

	return task, nil
}

// DeleteTask removes the owner's task with the given id. Returns
// ErrTaskNotFound when no match exists.
func (r *Repository) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[opt.ID]
	if !ok || task.OwnerID != opt.OwnerID {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, opt.ID)

	return nil
}
