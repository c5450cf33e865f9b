package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsInvalid is the sentinel error for malformed or out-of-contract values.
var ErrValueIsInvalid = errors.New("value is invalid")

// ValueIsInvalidError indicates that a named parameter carries an invalid value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation error that explains why the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the error message, appending the cause when present.
func (e *ValueIsInvalidError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
	}

	return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
}

// Unwrap returns the sentinel so errors.Is(err, ErrValueIsInvalid) matches.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
