package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidArgumentError reports that a requested Fibonacci index is outside the
// sequence domain (n < 1). It is always recoverable by the caller: no partial
// computation happens before this error is detected.
type InvalidArgumentError struct {
	// N is the rejected index.
	N int64
}

// Error returns a formatted message describing the invalid index.
//
// Returns:
//   - string: The error message string.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid value for n: %d (the sequence is defined for n >= 1)", e.N)
}

// OutOfRangeError reports that a requested index exceeds the safe
// computational bound of a specific strategy. It signals that the strategy is
// unsuitable for the input, not a system fault; callers are expected to
// continue with the remaining strategies.
type OutOfRangeError struct {
	// Strategy is the display name of the strategy that rejected the index.
	Strategy string
	// N is the rejected index.
	N int64
	// Max is the strategy's inclusive upper bound.
	Max uint64
}

// Error returns a formatted message describing the bound violation.
//
// Returns:
//   - string: The error message string.
func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("n=%d exceeds the safe bound of %d for the %s strategy", e.N, e.Max, e.Strategy)
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target InvalidArgumentError
	return errors.As(err, &target)
}

// IsOutOfRange reports whether err is (or wraps) an OutOfRangeError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an OutOfRangeError.
func IsOutOfRange(err error) bool {
	var target OutOfRangeError
	return errors.As(err, &target)
}

// IsDomainError reports whether err is one of the two input-domain error
// kinds. Domain errors are expected during comparison sweeps and are rendered
// as table markers rather than aborting the run.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an input-domain error.
func IsDomainError(err error) bool {
	return IsInvalidArgument(err) || IsOutOfRange(err)
}

// TimeoutError represents a computation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
