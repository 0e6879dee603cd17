// Package repository defines the task store contract shared by the
// memory and sqlite backends.
package repository

import (
	"context"

	"tasks-api/internal/domain"
)

// TaskRepository is an ordered collection of tasks.
//
// Lookups compare ids and return the first record in insertion order.
// Tasks handed out are copies; callers persist changes through Update.
type TaskRepository interface {
	List(ctx context.Context) ([]*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	// Append adds task at the end; the caller has already assigned the id.
	Append(ctx context.Context, task *domain.Task) error
	// Update overwrites name and completed of the task with task.ID.
	Update(ctx context.Context, task *domain.Task) error
	RemoveByID(ctx context.Context, id int64) (*domain.Task, error)
	Count(ctx context.Context) (int, error)
	// MaxID returns the highest id ever appended, 0 for a fresh store.
	MaxID(ctx context.Context) (int64, error)
	Close() error
}

// Seed appends tasks in order
func Seed(ctx context.Context, repo TaskRepository, tasks []domain.Task) error {
	for i := range tasks {
		task := tasks[i]
		if err := repo.Append(ctx, &task); err != nil {
			return err
		}
	}
	return nil
}
