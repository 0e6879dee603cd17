package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "name", Message: "is required"}}, "validation error for field 'name': is required"},
		{"Multiple errors", []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "completed", Message: "must be a boolean"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else {
				if result != tt.expectError {
					t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
				}
			}
		})
	}
}

func TestValidationError_AddRequiredError(t *testing.T) {
	ve := NewValidationError()

	ve.AddRequiredError("name")

	if len(ve.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(ve.Errors))
	}
	if ve.Errors[0].Type != ErrorTypeRequired {
		t.Errorf("Expected error type %v, got %v", ErrorTypeRequired, ve.Errors[0].Type)
	}
	if ve.Errors[0].Field != "name" {
		t.Errorf("Expected field 'name', got %s", ve.Errors[0].Field)
	}
}

func TestValidationError_AddInvalidTypeError(t *testing.T) {
	ve := NewValidationError()

	ve.AddInvalidTypeError("completed", `"yes"`, "boolean")

	if ve.Errors[0].Type != ErrorTypeInvalidType {
		t.Errorf("Expected error type %v, got %v", ErrorTypeInvalidType, ve.Errors[0].Type)
	}
	if ve.Errors[0].Message != "completed must be a boolean" {
		t.Errorf("Unexpected message %q", ve.Errors[0].Message)
	}
}

func TestValidationError_AddInvalidLengthError(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		expected string
	}{
		{"min only", 3, 0, "name must be at least 3 characters long"},
		{"max only", 0, 10, "name must be at most 10 characters long"},
		{"range", 3, 10, "name must be between 3 and 10 characters long"},
		{"neither", 0, 0, "name has invalid length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			ve.AddInvalidLengthError("name", "ab", tt.min, tt.max)

			if ve.Errors[0].Message != tt.expected {
				t.Errorf("AddInvalidLengthError() message = %q, expected %q", ve.Errors[0].Message, tt.expected)
			}
		})
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
	}{
		{"No errors", []FieldError{}, "Input validation failed"},
		{"Single error", []FieldError{{Field: "name", Message: "name is required"}}, "name is required"},
		{"Multiple errors", []FieldError{
			{Field: "name", Message: "name is required"},
			{Field: "completed", Message: "completed must be a boolean"},
		}, "Multiple validation errors occurred:\n- name is required\n- completed must be a boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.GetUserFriendlyMessage(); result != tt.expected {
				t.Errorf("GetUserFriendlyMessage() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestAsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("name")

	if got, ok := AsValidationError(ve); !ok || got != ve {
		t.Errorf("AsValidationError() = %v, %v; expected the ValidationError", got, ok)
	}
	if got, ok := AsValidationError(fmt.Errorf("create: %w", ve)); !ok || got != ve {
		t.Errorf("AsValidationError() = %v, %v; expected the wrapped ValidationError", got, ok)
	}

	regularError := &FieldError{Field: "test", Message: "error"}
	if _, ok := AsValidationError(regularError); ok {
		t.Errorf("AsValidationError() = true, expected false for regular error")
	}
}
