// Package guard provides a defensive construction check for value objects,
// entities, and commands. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the designated
// constructor, so validation rules cannot be skipped by direct struct
// initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is unconstructed and fails Validate.
//
// Example:
//
//	type Money struct {
//	    amount   float64
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount float64, currency string) (Money, error) {
//	    // validation...
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the enclosing object was created through its
// constructor, otherwise the given validation error (or
// ErrDefaultConstructorGuard when nil is passed).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
