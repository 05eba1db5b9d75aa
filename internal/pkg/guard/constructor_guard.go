// Package guard provides a small helper that enforces the constructor pattern
// on domain objects. A zero-value struct embedding ConstructorGuard fails
// Validate, so instances that bypassed their New* factory are detected before
// they can violate invariants.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard holder was
// not built through its constructor and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is invalid; obtain a valid guard with NewConstructorGuard
// inside the owning type's constructor.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate reports whether the holder was properly constructed.
// When it was not, Validate returns notConstructedErr, or
// ErrDefaultConstructorGuard if notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
