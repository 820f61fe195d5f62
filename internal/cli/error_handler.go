package cli

import (
	"fmt"

	"hirotrack/internal/errors"
	"hirotrack/internal/logging"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for typed errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		logging.Debugf("cli: %s failed: %v\n", operation, err)
	}
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}
	return err
}

// IsNotConfiguredError checks if an error means no credentials are set
func (eh *ErrorHandler) IsNotConfiguredError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotConfigured)
}

// IsUnauthorizedError checks if an error means the token was rejected
func (eh *ErrorHandler) IsUnauthorizedError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeUnauthorized)
}

// IsConnectionError checks if an error means the server was unreachable
func (eh *ErrorHandler) IsConnectionError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeConnection)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
