package validation

import (
	"testing"

	"tasks-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateTask(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name            string
		body            string
		expectError     bool
		errorType       ValidationErrorType
		expectName      string
		expectCompleted *bool
	}{
		{name: "Name and completed", body: `{"name":"Task 4","completed":false}`, expectName: "Task 4", expectCompleted: boolPtr(false)},
		{name: "Name only", body: `{"name":"Task 1 patch"}`, expectName: "Task 1 patch"},
		{name: "Completed true", body: `{"name":"abc","completed":true}`, expectName: "abc", expectCompleted: boolPtr(true)},
		{name: "Exactly three characters", body: `{"name":"abc"}`, expectName: "abc"},
		{name: "Whitespace counts toward length", body: `{"name":"  a"}`, expectName: "  a"},
		{name: "Multibyte characters count once", body: `{"name":"日本語"}`, expectName: "日本語"},
		{name: "Astral characters count twice", body: `{"name":"😀a"}`, expectName: "😀a"},
		{name: "Single astral character too short", body: `{"name":"😀"}`, expectError: true, errorType: ErrorTypeInvalidLength},
		{name: "Unknown fields ignored", body: `{"name":"Task","priority":5,"id":99}`, expectName: "Task"},
		{name: "Missing name", body: `{"completed":false}`, expectError: true, errorType: ErrorTypeRequired},
		{name: "Short name", body: `{"name":"ta"}`, expectError: true, errorType: ErrorTypeInvalidLength},
		{name: "Empty name", body: `{"name":""}`, expectError: true, errorType: ErrorTypeInvalidLength},
		{name: "Null name", body: `{"name":null}`, expectError: true, errorType: ErrorTypeInvalidType},
		{name: "Numeric name", body: `{"name":12345}`, expectError: true, errorType: ErrorTypeInvalidType},
		{name: "String completed", body: `{"name":"Task","completed":"true"}`, expectError: true, errorType: ErrorTypeInvalidType},
		{name: "Null completed", body: `{"name":"Task","completed":null}`, expectError: true, errorType: ErrorTypeInvalidType},
		{name: "Empty body", body: ``, expectError: true, errorType: ErrorTypeRequired},
		{name: "Malformed JSON", body: `{"name":`, expectError: true, errorType: ErrorTypeRequired},
		{name: "Array body", body: `[{"name":"Task"}]`, expectError: true, errorType: ErrorTypeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := validator.ValidateTask(DecodeCandidate([]byte(tt.body)))

			if tt.expectError {
				require.Error(t, err)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.NotEmpty(t, ve.Errors)
				assert.Equal(t, tt.errorType, ve.Errors[0].Type)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectName, input.Name)
			assert.Equal(t, tt.expectCompleted, input.Completed)
		})
	}
}

func TestTaskValidator_CollectsEveryFieldError(t *testing.T) {
	validator := NewTaskValidator()

	_, err := validator.ValidateTask(DecodeCandidate([]byte(`{"name":"x","completed":1}`)))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 2)
	assert.Equal(t, FieldName, ve.Errors[0].Field)
	assert.Equal(t, FieldCompleted, ve.Errors[1].Field)
}

func TestTaskValidator_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.NameMinLength = 5
	validator := NewTaskValidatorWithConfig(cfg)

	_, err := validator.ValidateTask(DecodeCandidate([]byte(`{"name":"abcd"}`)))
	assert.Error(t, err)

	_, err = validator.ValidateTask(DecodeCandidate([]byte(`{"name":"abcde"}`)))
	assert.NoError(t, err)
}

func boolPtr(b bool) *bool {
	return &b
}
