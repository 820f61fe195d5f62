package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"not configured", ErrorTypeNotConfigured, "not_configured"},
		{"unauthorized", ErrorTypeUnauthorized, "unauthorized"},
		{"api", ErrorTypeAPI, "api"},
		{"connection", ErrorTypeConnection, "connection"},
		{"storage", ErrorTypeStorage, "storage"},
		{"missing selection", ErrorTypeMissingSelection, "missing_selection"},
		{"validation", ErrorTypeValidation, "validation"},
		{"unknown", ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &AppError{Type: ErrorTypeAPI, Message: "something broke"}
		assert.Equal(t, "api: something broke", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("underlying failure")
		err := &AppError{Type: ErrorTypeConnection, Message: "cannot reach server", Cause: cause}
		assert.Contains(t, err.Error(), "connection: cannot reach server")
		assert.Contains(t, err.Error(), "underlying failure")
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := &AppError{Type: ErrorTypeStorage, Message: "save failed", Cause: cause}
	assert.Equal(t, cause, err.Unwrap())
}

func TestAppError_IsType(t *testing.T) {
	err := NewUnauthorizedError()
	assert.True(t, err.IsType(ErrorTypeUnauthorized))
	assert.False(t, err.IsType(ErrorTypeConnection))
}

func TestAppError_Context(t *testing.T) {
	err := NewAPIError(500, "server error")

	code, ok := err.GetContext("status_code")
	assert.True(t, ok)
	assert.Equal(t, 500, code)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)

	err.WithContext("extra", "value")
	extra, ok := err.GetContext("extra")
	assert.True(t, ok)
	assert.Equal(t, "value", extra)
}

func TestAppError_StatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected int
	}{
		{"api error carries status", NewAPIError(404, "not found"), 404},
		{"unauthorized carries 401", NewUnauthorizedError(), 401},
		{"storage error has none", NewStorageError("save", nil), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.StatusCode())
		})
	}
}
