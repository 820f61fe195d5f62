package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotConfiguredError(t *testing.T) {
	err := NewNotConfiguredError("list projects")

	assert.True(t, err.IsType(ErrorTypeNotConfigured))
	assert.Equal(t, "NOT_CONFIGURED", err.Code)
	assert.Contains(t, err.Message, "list projects")

	operation, ok := err.GetContext("operation")
	require.True(t, ok)
	assert.Equal(t, "list projects", operation)
}

func TestNewUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError()

	assert.True(t, err.IsType(ErrorTypeUnauthorized))
	assert.Contains(t, err.Message, "API token")
	assert.Contains(t, err.Message, "permissions")
	assert.Equal(t, 401, err.StatusCode())
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(422, "validation failed on server")

	assert.True(t, err.IsType(ErrorTypeAPI))
	assert.Equal(t, "validation failed on server", err.Message)
	assert.Equal(t, 422, err.StatusCode())
}

func TestNewConnectionError(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewConnectionError("https://kimai.example.com", cause)

	assert.True(t, err.IsType(ErrorTypeConnection))
	assert.Contains(t, err.Message, "https://kimai.example.com")
	assert.Equal(t, cause, err.Unwrap())
}

func TestNewStorageError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorageError("save API token", cause)

	assert.True(t, err.IsType(ErrorTypeStorage))
	assert.Contains(t, err.Message, "save API token")
	assert.Equal(t, cause, err.Unwrap())
}

func TestNewMissingSelectionError(t *testing.T) {
	err := NewMissingSelectionError("a project")

	assert.True(t, err.IsType(ErrorTypeMissingSelection))
	assert.Contains(t, err.Message, "a project")
	assert.Contains(t, err.Message, "selected")
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType ErrorType
		expected  bool
	}{
		{"matching type", NewUnauthorizedError(), ErrorTypeUnauthorized, true},
		{"non-matching type", NewUnauthorizedError(), ErrorTypeConnection, false},
		{"wrapped app error", fmt.Errorf("outer: %w", NewAPIError(500, "boom")), ErrorTypeAPI, true},
		{"plain error", fmt.Errorf("plain"), ErrorTypeAPI, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsErrorType(tt.err, tt.errorType))
		})
	}
}

func TestAsAppError(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		original := NewAPIError(500, "boom")
		appErr, ok := AsAppError(original)
		require.True(t, ok)
		assert.Equal(t, original, appErr)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := AsAppError(fmt.Errorf("plain"))
		assert.False(t, ok)
	})
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"not configured directs to login", NewNotConfiguredError("ping"), "login"},
		{"unauthorized passes through", NewUnauthorizedError(), "API token"},
		{"connection adds guidance", NewConnectionError("https://x", nil), "network connection"},
		{"api passes message through", NewAPIError(500, "HTTP 500: Internal Server Error"), "HTTP 500"},
		{"missing selection passes through", NewMissingSelectionError("an activity"), "an activity"},
		{"plain error falls back to Error()", fmt.Errorf("raw failure"), "raw failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetUserMessage(tt.err), tt.contains)
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewNotConfiguredError("ping")))
	assert.False(t, ShouldLogError(NewMissingSelectionError("a project")))
	assert.True(t, ShouldLogError(NewConnectionError("https://x", nil)))
	assert.True(t, ShouldLogError(NewAPIError(500, "boom")))
	assert.True(t, ShouldLogError(fmt.Errorf("unknown")))
}
