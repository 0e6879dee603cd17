package domain

import "fmt"

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// NewTask creates a new Task with the given id, name and completion state.
func NewTask(id int64, name string, completed bool) Task {
	return Task{
		ID:        id,
		Name:      name,
		Completed: completed,
	}
}

// TaskInput holds the validated fields of a create, replace or patch request.
// Completed is nil when the request body did not carry the field.
type TaskInput struct {
	Name      string
	Completed *bool
}

// CompletedOrDefault returns the supplied completion state, or false when absent.
func (in TaskInput) CompletedOrDefault() bool {
	if in.Completed == nil {
		return false
	}
	return *in.Completed
}

// CompletedIsTruthy reports whether the input carries completed=true.
func (in TaskInput) CompletedIsTruthy() bool {
	return in.Completed != nil && *in.Completed
}

// SeedTasks returns the records the store starts with.
func SeedTasks() []Task {
	seed := make([]Task, 0, 3)
	for i := int64(1); i <= 3; i++ {
		seed = append(seed, NewTask(i, fmt.Sprintf("Task %d", i), false))
	}
	return seed
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
