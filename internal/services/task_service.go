package services

import (
	"context"
	"sync"

	"tasks-api/internal/config"
	"tasks-api/internal/domain"
	"tasks-api/internal/errors"
	"tasks-api/internal/repository"
	"tasks-api/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	mu            sync.Mutex
	repo          repository.TaskRepository
	taskValidator *validation.TaskValidator
	nextID        IDStrategy
}

// NewTaskService creates a TaskService with default validation and the
// length id strategy
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
		nextID:        LengthIDs,
	}
}

// NewTaskServiceWithConfig creates a TaskService honouring cfg
func NewTaskServiceWithConfig(repo repository.TaskRepository, cfg *config.Config) (TaskService, error) {
	nextID, err := IDStrategyFor(cfg.Store.IDStrategy)
	if err != nil {
		return nil, err
	}
	return &taskServiceImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		nextID:        nextID,
	}, nil
}

// validate turns a failed validation into an AppError of type validation
func (t *taskServiceImpl) validate(candidate validation.Candidate) (domain.TaskInput, error) {
	input, err := t.taskValidator.ValidateTask(candidate)
	if err != nil {
		return domain.TaskInput{}, errors.NewValidationError("invalid task", err)
	}
	return input, nil
}

// ListTasks returns every task in insertion order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.repo.List(ctx)
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.repo.FindByID(ctx, id)
}

// CreateTask creates a new task from a request body
func (t *taskServiceImpl) CreateTask(ctx context.Context, candidate validation.Candidate) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	input, err := t.validate(candidate)
	if err != nil {
		return nil, err
	}

	id, err := t.nextID(ctx, t.repo)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(id, input.Name, input.CompletedOrDefault())
	if err := t.repo.Append(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ReplaceTask overwrites name and completed of an existing task
func (t *taskServiceImpl) ReplaceTask(ctx context.Context, id int64, candidate validation.Candidate) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task, err := t.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input, err := t.validate(candidate)
	if err != nil {
		return nil, err
	}

	task.Name = input.Name
	task.Completed = input.CompletedOrDefault()
	if err := t.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// PatchTask renames a task and marks it completed when asked to.
// completed=false is not applied.
func (t *taskServiceImpl) PatchTask(ctx context.Context, id int64, candidate validation.Candidate) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task, err := t.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input, err := t.validate(candidate)
	if err != nil {
		return nil, err
	}

	task.Name = input.Name
	if input.CompletedIsTruthy() {
		task.Completed = true
	}
	if err := t.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task and returns it
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.repo.RemoveByID(ctx, id)
}
