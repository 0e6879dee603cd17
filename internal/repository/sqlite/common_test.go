package sqlite

import (
	"errors"
	"testing"

	apperrors "tasks-api/internal/errors"

	"github.com/stretchr/testify/assert"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, nil
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeDatabase))
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name           string
		result         *MockResult
		expectErr      bool
		expectNotFound bool
	}{
		{"one row", &MockResult{rowsAffected: 1}, false, false},
		{"no rows", &MockResult{rowsAffected: 0}, true, true},
		{"driver error", &MockResult{rowsErr: errors.New("unsupported")}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "task", "7")

			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.expectNotFound, apperrors.IsNotFound(err))
		})
	}
}
