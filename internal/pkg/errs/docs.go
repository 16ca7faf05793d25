// Package errs provides the typed errors shared by the delivery desk packages.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrObjectNotFound, ErrValueIsInvalid, ...)
//   - a struct carrying the offending parameter and an optional Cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so callers classify with errors.Is
//
// Values embedded in messages are flattened to a single line.
package errs
