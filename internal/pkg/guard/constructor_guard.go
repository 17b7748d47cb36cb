// Package guard lets value objects, commands and queries detect that they
// were built through their constructor rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not meaningful.
//
//	type SubmitCommand struct {
//	    flowID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c SubmitCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
