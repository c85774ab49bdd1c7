// Package guard provides a defensive pattern that ensures domain objects are only
// created through their designated constructor functions. Embedding a ConstructorGuard
// in a struct makes zero-value instances detectable: the guard flag is only set when
// the object is built through its constructor, so validation fails for anything else.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// and the guard detects a zero-value object. This guarantees validation always
// fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object was created through a
// constructor. The zero value is invalid; obtain one via NewConstructorGuard.
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call it from the enclosing type's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// For zero-value guards it returns the provided error, or
// ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err != nil {
		return err
	}
	return ErrDefaultConstructorGuard
}
