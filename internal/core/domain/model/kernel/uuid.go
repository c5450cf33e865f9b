package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID.
// Identifiers must come from NewUUID, UUIDFromString, or UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by all aggregates: orders and
// staff members are both keyed by it. It wraps github.com/google/uuid so the
// domain layer never depends on the library type directly.
//
// The zero value is invalid and fails Validate; the nil UUID is never a legal
// identifier in this domain.
//
// Example usage:
//
//	orderID := kernel.NewUUID()
//
//	staffID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
// Used wherever a fresh aggregate identity is minted, e.g. when a customer
// places an order.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses an identifier from its canonical string form.
// Transport adapters use it to turn path parameters and request payloads into
// domain identifiers; a malformed string is rejected before any handler runs.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier from its 16-byte binary form, the shape
// the postgres adapters read back from uuid columns. The nil UUID is rejected:
// a stored row can never legally reference it.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the wrapped uuid.UUID for storage adapters that persist
// identifiers in binary uuid columns. Slice it (id.Bytes()[:]) when a raw
// byte slice is needed.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two identifiers by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports whether the UUID was properly constructed.
// Returns ErrUUIDIsNotConstructed for the zero value (the nil UUID).
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
