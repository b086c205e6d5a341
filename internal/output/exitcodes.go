// Package output provides structured output and error handling for the delorder CLI.
package output

import "errors"

// Exit codes:
// 0 = Success
// 1 = User error (bad args, results file not found)
// 2 = System error (I/O error)
// 3 = Malformed input (invalid JSON, missing keys, trial index out of range)
// 4 = Invariant violation (first deleted step is not the empty initial state)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitMalformed   = 3
	ExitInvariant   = 4
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, bad settings, results file not found.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewUserErrorWithCause creates a user error wrapping an underlying cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithCause creates a system error (exit code 2) wrapping an
// underlying cause. Use for: read failures, write failures.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// NewMalformedError creates an error for input that is not shaped like a
// results document (exit code 3).
func NewMalformedError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitMalformed,
		Message: message,
		Cause:   cause,
	}
}

// NewInvariantError creates an error for a broken structural invariant of
// the results format (exit code 4).
func NewInvariantError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitInvariant,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Untyped errors come from flag and argument parsing
	return ExitUserError
}
