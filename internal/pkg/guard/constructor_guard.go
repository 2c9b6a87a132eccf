// Package guard provides a defensive construction marker for commands, queries
// and domain objects. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so code paths can insist on objects built through their
// designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which catches accidental use of
// directly-instantiated structs.
//
// Example:
//
//	type SignInCommand struct {
//	    email string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSignInCommand(email string) SignInCommand {
//	    return SignInCommand{email: email, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c SignInCommand) Validate() error {
//	    return c.guard.Validate(ErrSignInCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
