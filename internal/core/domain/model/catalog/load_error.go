package catalog

import (
	"errors"
	"fmt"
)

// ErrLoad classifies every failure to obtain reference data.
var ErrLoad = errors.New("reference data could not be loaded")

// LoadError reports that a reference collection was unreachable or malformed.
// It is not recoverable within a session: selectors stay empty until the
// process is restarted.
type LoadError struct {
	// Collection is "customers" or "products".
	Collection string
	Cause      error
}

// NewLoadError creates a LoadError for the named collection.
func NewLoadError(collection string, cause error) *LoadError {
	return &LoadError{Collection: collection, Cause: cause}
}

func (e *LoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrLoad, e.Collection)
	}
	return fmt.Sprintf("%s: %s: %s", ErrLoad, e.Collection, e.Cause)
}

// Unwrap exposes both ErrLoad and the cause to errors.Is.
func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrLoad}
	}
	return []error{ErrLoad, e.Cause}
}
