package errs

import (
	"errors"
	"fmt"
)

// ErrVersionIsInvalid is the sentinel error for malformed version values.
var ErrVersionIsInvalid = errors.New("version is invalid")

// VersionIsInvalidError indicates that a version token failed validation.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping the error
// that explains why the version was rejected.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without
// an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
	}
}

// Error formats the error message, appending the cause when present.
func (e *VersionIsInvalidError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
	}

	return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
}

// Unwrap returns the sentinel so errors.Is(err, ErrVersionIsInvalid) matches.
func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}
