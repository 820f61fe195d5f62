package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirotrack/internal/errors"
)

func TestErrorHandlerHandle(t *testing.T) {
	handler := NewErrorHandler()

	t.Run("typed error uses the user message", func(t *testing.T) {
		err := handler.Handle("list projects", errors.NewNotConfiguredError("list projects"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list projects")
		assert.Contains(t, err.Error(), "hirotrack login")
	})

	t.Run("plain error is wrapped", func(t *testing.T) {
		cause := fmt.Errorf("boom")
		err := handler.Handle("list projects", cause)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list projects")
		assert.ErrorIs(t, err, cause)
	})
}

func TestErrorHandlerHandleSimple(t *testing.T) {
	handler := NewErrorHandler()

	t.Run("typed error", func(t *testing.T) {
		err := handler.HandleSimple(errors.NewMissingSelectionError("a project"))
		require.Error(t, err)
		assert.Equal(t, "cannot start timer: a project must be selected first", err.Error())
	})

	t.Run("plain error passes through", func(t *testing.T) {
		cause := fmt.Errorf("boom")
		assert.Same(t, cause, handler.HandleSimple(cause))
	})
}

func TestErrorHandlerClassification(t *testing.T) {
	handler := NewErrorHandler()

	assert.True(t, handler.IsNotConfiguredError(errors.NewNotConfiguredError("op")))
	assert.True(t, handler.IsUnauthorizedError(errors.NewUnauthorizedError()))
	assert.True(t, handler.IsConnectionError(errors.NewConnectionError("https://x", nil)))

	assert.False(t, handler.IsNotConfiguredError(errors.NewUnauthorizedError()))
	assert.False(t, handler.IsConnectionError(fmt.Errorf("plain")))
}

func TestErrorHandlerGetErrorCode(t *testing.T) {
	handler := NewErrorHandler()

	assert.Equal(t, "UNAUTHORIZED", handler.GetErrorCode(errors.NewUnauthorizedError()))
	assert.Equal(t, "UNKNOWN_ERROR", handler.GetErrorCode(fmt.Errorf("plain")))
}
