package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsRequired is the sentinel error for missing mandatory values.
var ErrValueIsRequired = errors.New("value is required")

// ValueIsRequiredError indicates that a mandatory parameter was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the
// error that revealed the missing value.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the error message, appending the cause when present.
func (e *ValueIsRequiredError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
	}

	return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
}

// Unwrap returns the sentinel so errors.Is(err, ErrValueIsRequired) matches.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
