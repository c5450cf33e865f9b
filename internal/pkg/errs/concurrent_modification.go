package errs

import (
	"errors"
	"fmt"
)

// ErrConcurrentModification is the sentinel error for optimistic-concurrency
// conflicts: a record was changed by a competing request between read and write.
// Callers should refetch the record and retry rather than treat the input as invalid.
var ErrConcurrentModification = errors.New("concurrent modification")

// ConcurrentModificationError indicates that a compare-and-set update lost the
// race against another writer. ParamName names the record kind, ID its identifier.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConcurrentModificationError creates a ConcurrentModificationError without
// an underlying cause.
func NewConcurrentModificationError(paramName string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewConcurrentModificationErrorWithCause creates a ConcurrentModificationError
// wrapping the storage error that revealed the conflict.
func NewConcurrentModificationErrorWithCause(paramName string, id any, cause error) *ConcurrentModificationError {
	return &ConcurrentModificationError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error formats the error message. The short form is used when no cause is
// attached; the long form includes the parameter name and the cause.
func (e *ConcurrentModificationError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrConcurrentModification, e.ID))
	}

	return sanitize(fmt.Sprintf(
		"%s: param is: %s, ID is: %s (cause: %s)",
		ErrConcurrentModification, e.ParamName, e.ID, e.Cause,
	))
}

// Unwrap returns the sentinel so errors.Is(err, ErrConcurrentModification) matches.
func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
