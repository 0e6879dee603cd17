package errors

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is comparisons; only Type and Code take part in matching.
var (
	ErrNotFound   = &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}
	ErrValidation = &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_FAILED"}
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    ErrValidation.Code,
		Cause:   cause,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	err := &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    ErrNotFound.Code,
	}
	return err.WithContext("resource", resource).WithContext("identifier", identifier)
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	err := &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
	}
	return err.WithContext("operation", operation)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err is worth an error log line. Validation
// and not found failures are answered to the client and not logged.
func ShouldLogError(err error) bool {
	return !errors.Is(err, ErrValidation) && !errors.Is(err, ErrNotFound)
}
