package cli

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"todo-list/internal/client"
	"todo-list/internal/errors"
	"todo-list/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %w", operation, eh.HandleSimple(err))
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	// The server already rendered a user message
	var httpErr *client.HTTPError
	if stderrors.As(err, &httpErr) {
		if httpErr.Message != "" {
			return fmt.Errorf("%s", httpErr.Message)
		}
		return httpErr
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	var httpErr *client.HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.Status == http.StatusBadRequest
	}
	return stderrors.Is(err, errors.ErrValidation) || errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	var httpErr *client.HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.Status == http.StatusNotFound
	}
	return stderrors.Is(err, errors.ErrNotFound)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// Process exit codes for a failed command
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// ExitCode picks the process exit code for a command error
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case eh.IsValidationError(err):
		return ExitUsage
	case eh.IsNotFoundError(err):
		return ExitNotFound
	default:
		return ExitFailure
	}
}

// ExitError carries the exit code chosen for a failed command. Its message
// is the message of the wrapped error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeOf returns the exit code carried by err, or ExitFailure when err
// holds none.
func ExitCodeOf(err error) int {
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
