package workflow

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection classifies a user pick that is missing or does not
// resolve to a loaded customer or product, and non-positive quantities.
var ErrInvalidSelection = errors.New("invalid selection")

// InvalidSelectionError reports which selection was rejected.
type InvalidSelectionError struct {
	// Field is "customer", "product" or "quantity".
	Field string
	// Value is the rejected raw input.
	Value any
	Cause error
}

// NewInvalidSelectionError creates an InvalidSelectionError.
func NewInvalidSelectionError(field string, value any, cause error) *InvalidSelectionError {
	return &InvalidSelectionError{Field: field, Value: value, Cause: cause}
}

func (e *InvalidSelectionError) Error() string {
	msg := fmt.Sprintf("%s: please select a valid %s (got %q)", ErrInvalidSelection, e.Field, fmt.Sprint(e.Value))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

// Unwrap exposes ErrInvalidSelection and the cause to errors.Is.
func (e *InvalidSelectionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidSelection}
	}
	return []error{ErrInvalidSelection, e.Cause}
}
