// Package errors provides a small typed-error taxonomy for the input
// boundary of the transfer decision engine: malformed Patient/Facility
// construction. Decide itself never returns a Go error — every outcome is
// a TransferDecision, forfeit codes included. These errors exist only for
// callers constructing domain values before they reach Decide.
package errors

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel wrapped by every AppError this package
// produces; callers can test for it with errors.Is.
var ErrValidation = errors.New("validation error")

// AppError represents a rejected input with enough context to report back
// to the caller of a constructor function.
type AppError struct {
	Err     error
	Message string
	Code    string
	Details map[string]string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation creates a validation error with field-level details.
func Validation(message string, details map[string]string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Code:    "VALIDATION_ERROR",
		Details: details,
	}
}

// Field is a convenience constructor for a single offending field.
func Field(field, reason string) *AppError {
	return Validation(fmt.Sprintf("invalid %s", field), map[string]string{field: reason})
}
