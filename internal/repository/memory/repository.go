// Package memory keeps tasks in a slice owned by the process.
package memory

import (
	"context"
	"strconv"
	"sync"

	"tasks-api/internal/domain"
	"tasks-api/internal/errors"
)

// Repository implements repository.TaskRepository over a slice
type Repository struct {
	mu    sync.RWMutex
	tasks []domain.Task
	maxID int64
}

// New creates an empty in-memory repository
func New() *Repository {
	return &Repository{}
}

// List returns copies of all tasks in insertion order
func (r *Repository) List(ctx context.Context) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(r.tasks))
	for i := range r.tasks {
		task := r.tasks[i]
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

// FindByID returns the first task with the given id
func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}
	task := r.tasks[i]
	return &task, nil
}

// Append adds a task at the end of the collection
func (r *Repository) Append(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, *task)
	if task.ID > r.maxID {
		r.maxID = task.ID
	}
	return nil
}

// Update overwrites the first task with task.ID
func (r *Repository) Update(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(task.ID)
	if i < 0 {
		return notFound(task.ID)
	}
	r.tasks[i].Name = task.Name
	r.tasks[i].Completed = task.Completed
	return nil
}

// RemoveByID deletes the first task with the given id and returns it
func (r *Repository) RemoveByID(ctx context.Context, id int64) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}
	removed := r.tasks[i]
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return &removed, nil
}

// Count returns the number of stored tasks
func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

// MaxID returns the highest id appended so far
func (r *Repository) MaxID(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxID, nil
}

// Close is a no-op
func (r *Repository) Close() error {
	return nil
}

// indexOf requires r.mu to be held.
func (r *Repository) indexOf(id int64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int64) error {
	return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
}
