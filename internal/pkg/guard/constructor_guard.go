// Package guard implements the constructor guard pattern used by commands,
// queries, and value objects to distinguish properly constructed instances
// from zero values.
//
// A struct embeds a ConstructorGuard and sets it via NewConstructorGuard
// inside its constructor. Validation methods then call Validate with the
// struct's own "not constructed" error, so a zero-value instance is rejected
// before any business logic runs on it.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value is "not constructed" and fails validation.
//
// Example:
//
//	var ErrMoneyNotConstructed = errors.New("Money must be created via NewMoney")
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) (Money, error) {
//	    // validate amount and currency...
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly
// constructed. Call this only from constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
