// Package guard provides the constructor guard pattern used across domain
// objects, commands, and queries. A guard embedded in a struct records whether
// the struct was created through its designated constructor, so zero-value
// instances can be detected and rejected before use.
package guard

import "errors"

// ErrNotConstructed is the default error returned by Validate when a nil
// error is supplied. Validation always fails with a meaningful message even
// if the caller does not provide a specific one.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is invalid; only NewConstructorGuard produces a valid guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call it inside the constructor of the owning type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns err, or ErrNotConstructed when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}

	if err == nil {
		return ErrNotConstructed
	}

	return err
}
