package errors

import (
	"errors"
	"fmt"
)

// NewNotConfiguredError creates an error for operations attempted before
// a server URL and API token have been set.
func NewNotConfiguredError(operation string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotConfigured,
		Message: fmt.Sprintf("%s requires a configured server URL and API token", operation),
		Code:    "NOT_CONFIGURED",
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewUnauthorizedError creates an error for a rejected API token (HTTP 401)
func NewUnauthorizedError() *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: "authentication failed: check that the API token is valid and has the required permissions",
		Code:    "UNAUTHORIZED",
		Context: map[string]interface{}{
			"status_code": 401,
		},
	}
}

// NewAPIError creates an error for a non-2xx API response
func NewAPIError(statusCode int, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeAPI,
		Message: message,
		Code:    "API_ERROR",
		Context: map[string]interface{}{
			"status_code": statusCode,
		},
	}
}

// NewConnectionError creates an error for a transport-level failure where
// no HTTP response was received at all.
func NewConnectionError(serverURL string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConnection,
		Message: fmt.Sprintf("cannot reach server at %s", serverURL),
		Code:    "CONNECTION_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"server_url": serverURL,
		},
	}
}

// NewStorageError creates an error for a credential persistence failure
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("credential storage failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewMissingSelectionError creates an error for a timer started without
// both a project and an activity selected.
func NewMissingSelectionError(missing string) *AppError {
	return &AppError{
		Type:    ErrorTypeMissingSelection,
		Message: fmt.Sprintf("cannot start timer: %s must be selected first", missing),
		Code:    "MISSING_SELECTION",
		Context: map[string]interface{}{
			"missing": missing,
		},
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
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

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeNotConfigured:
			return "No server connection is configured. Run 'hirotrack login' first."
		case ErrorTypeUnauthorized:
			return appErr.Message
		case ErrorTypeConnection:
			return appErr.Message + ". Check the server URL and your network connection."
		case ErrorTypeAPI:
			return appErr.Message
		case ErrorTypeStorage:
			return "Saving credentials failed. Please try again."
		case ErrorTypeMissingSelection:
			return appErr.Message
		case ErrorTypeValidation:
			return appErr.Message
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeNotConfigured, ErrorTypeMissingSelection, ErrorTypeValidation:
			return false // These are user errors, not system errors
		case ErrorTypeUnauthorized, ErrorTypeAPI, ErrorTypeConnection, ErrorTypeStorage:
			return true
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
