package errs

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is the sentinel error for lookups that resolve to nothing.
// Use errors.Is with this sentinel to classify ObjectNotFoundError instances.
var ErrObjectNotFound = errors.New("object not found")

// ObjectNotFoundError indicates that an object could not be found by its identifier.
// ParamName describes which lookup parameter was used, ID holds the value searched for.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// lower-level error that triggered the lookup failure.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error formats the error message. The short form is used when no cause is
// attached; the long form includes the parameter name and the cause.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
	}

	return sanitize(fmt.Sprintf(
		"%s: param is: %s, ID is: %s (cause: %s)",
		ErrObjectNotFound, e.ParamName, e.ID, e.Cause,
	))
}

// Unwrap returns the sentinel so errors.Is(err, ErrObjectNotFound) matches.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}
