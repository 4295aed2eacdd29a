// Package errors holds error types shared across layers.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidParam marks a caller-supplied value that failed parsing or
// validation. Handlers map it to a 400 with no partial effect.
var ErrInvalidParam = errors.New("invalid parameter")

// ValidationError carries the offending field and reason. It unwraps to
// ErrInvalidParam so callers can test with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidParam }

// NewValidation builds a ValidationError.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
