// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to tell values built by their constructor apart from
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero value
// and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was created by its constructor.
//
// Example usage:
//
//	var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")
//
//	type LineItem struct {
//	    quantity int
//	    grams    float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (i LineItem) Validate() error {
//	    return i.guard.Validate(ErrLineItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created with NewConstructorGuard.
//
// Parameters:
//   - validationError: The error to return if the object was not properly constructed
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError, or ErrDefaultConstructorGuard, otherwise
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
