package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ExitUser is the process exit code for every handled failure.
const ExitUser = 1

// ErrInvalidInput indicates a command argument failed validation.
var ErrInvalidInput = errors.New("invalid input")

// Re-exported helpers so callers only need a single errors import.
var (
	New   = errors.New
	Newf  = errors.Newf
	Wrap  = errors.Wrap
	Wrapf = errors.Wrapf
	Is    = errors.Is
	As    = errors.As
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ValidationError reports malformed command input detected before any
// request is sent.
type ValidationError struct {
	// Field is the flag or argument name, e.g. "--start".
	Field string

	// Value is the rejected input.
	Value string

	// Reason explains what a valid value looks like.
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// Error formats the validation failure.
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Field, e.Reason)
}

// Unwrap returns ErrInvalidInput so callers can match any validation failure.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ExitCode returns the process exit code for err: 0 for nil, the code
// carried by an ExitError, and ExitUser otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return ExitUser
}
