package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsOutOfRange is the sentinel error for values outside an allowed interval.
var ErrValueIsOutOfRange = errors.New("value is out of range")

// ValueIsOutOfRangeError indicates that a named parameter falls outside
// the [Min, Max] interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// the validation error that explains the rejection.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

// Error formats the error message with the offending value and the allowed bounds.
func (e *ValueIsOutOfRangeError) Error() string {
	message := fmt.Sprintf(
		"%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max,
	)

	if e.Cause != nil {
		message = fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}

	return sanitize(message)
}

// Unwrap returns the sentinel so errors.Is(err, ErrValueIsOutOfRange) matches.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}
