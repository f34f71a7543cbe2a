package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomErrorUnwraps(t *testing.T) {
	err := NewValidationError("name cannot be empty")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "name cannot be empty", err.Error())

	var custom *CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "name cannot be empty", custom.Message)
}

func TestCustomErrorThroughWrapping(t *testing.T) {
	err := fmt.Errorf("applying: %w", NewConflictError("project is not recruiting"))

	assert.True(t, errors.Is(err, ErrConflict))

	var custom *CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "project is not recruiting", custom.Message)
}

func TestCustomErrorFallbackMessage(t *testing.T) {
	err := &CustomError{Err: ErrResourceNotFound}
	assert.Equal(t, ErrResourceNotFound.Error(), err.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}

func TestCustomErrorWithDetails(t *testing.T) {
	err := NewCustomError(ErrValidationFailed, "bad input").
		WithDetails(map[string]interface{}{"field": "email"})

	assert.Equal(t, "email", err.Details["field"])
	assert.True(t, errors.Is(err, ErrValidationFailed))
}
