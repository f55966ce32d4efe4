// Package guard lets value objects detect that they were built through their
// constructor rather than declared as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in values that must only be created by a constructor.
// Its zero value reports the owning object as not constructed.
//
// Example:
//
//	type Parcel struct {
//	    weight float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewParcel(weight float64) (Parcel, error) {
//	    if weight <= 0 {
//	        return Parcel{}, errors.New("weight must be positive")
//	    }
//	    return Parcel{weight: weight, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Parcel) Validate() error {
//	    return p.guard.Validate(ErrParcelIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
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
