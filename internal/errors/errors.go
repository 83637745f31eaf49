// Package errors provides the error kinds and exit codes for newcrate.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewTargetNotEmptyError reports that path exists and cannot be scaffolded into.
func NewTargetNotEmptyError(path string) error {
	return &DetailError{
		Type:     "target not empty",
		Message:  fmt.Sprintf("%s is not empty", path),
		Location: path,
		Hint:     "Choose a path that does not exist or is an empty directory.",
		Cause:    ErrTargetNotEmpty,
	}
}

// NewVCSInitError wraps a repository initialization failure.
func NewVCSInitError(path string, cause error) error {
	return &DetailError{
		Type:     "vcs init failed",
		Message:  cause.Error(),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrVCSInit, cause),
	}
}

// NewIOError wraps a filesystem failure for the given path.
func NewIOError(op, path string, cause error) error {
	return &DetailError{
		Type:     "i/o error",
		Message:  fmt.Sprintf("%s: %v", op, cause),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
