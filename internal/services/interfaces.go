package services

import (
	"context"

	"tasks-api/internal/domain"
	"tasks-api/internal/validation"
)

// TaskService handles the task lifecycle behind the HTTP endpoints.
//
// Every method runs under one service-wide lock so lookup, validation and
// mutation of a request are atomic with respect to other requests.
type TaskService interface {
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask validates candidate and appends a task with a fresh id.
	CreateTask(ctx context.Context, candidate validation.Candidate) (*domain.Task, error)
	// ReplaceTask resolves id first, then validates and overwrites name and completed.
	ReplaceTask(ctx context.Context, id int64, candidate validation.Candidate) (*domain.Task, error)
	// PatchTask resolves id first, then validates, overwrites name, and sets
	// completed only when the candidate carries completed=true.
	PatchTask(ctx context.Context, id int64, candidate validation.Candidate) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) (*domain.Task, error)
}
