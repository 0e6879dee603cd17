package validation

import (
	"tasks-api/internal/config"
	"tasks-api/internal/domain"
)

// Field names accepted in task request bodies.
const (
	FieldName      = "name"
	FieldCompleted = "completed"
)

// TaskValidator checks create, replace and patch bodies.
// Unknown fields are ignored.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring cfg.Validation
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTask returns the typed input carried by candidate, or a
// *ValidationError describing every field that failed.
func (tv *TaskValidator) ValidateTask(candidate Candidate) (domain.TaskInput, error) {
	validationError := NewValidationError()
	var input domain.TaskInput

	tv.validateName(candidate, &input, validationError)
	tv.validateCompleted(candidate, &input, validationError)

	if validationError.HasErrors() {
		return domain.TaskInput{}, validationError
	}
	return input, nil
}

func (tv *TaskValidator) validateName(candidate Candidate, input *domain.TaskInput, ve *ValidationError) {
	raw, ok := candidate.Field(FieldName)
	if !ok {
		ve.AddRequiredError(FieldName)
		return
	}

	name, ok := tv.validator.AsString(raw)
	if !ok {
		ve.AddInvalidTypeError(FieldName, string(raw), "string")
		return
	}

	if !tv.validator.IsValidNameLength(name) {
		ve.AddInvalidLengthError(FieldName, name, tv.validator.NameMinLength(), 0)
		return
	}
	input.Name = name
}

func (tv *TaskValidator) validateCompleted(candidate Candidate, input *domain.TaskInput, ve *ValidationError) {
	raw, ok := candidate.Field(FieldCompleted)
	if !ok {
		return
	}

	completed, ok := tv.validator.AsBool(raw)
	if !ok {
		ve.AddInvalidTypeError(FieldCompleted, string(raw), "boolean")
		return
	}
	input.Completed = &completed
}
