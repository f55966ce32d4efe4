package freight

import (
	"errors"
	"fmt"
)

// ErrInvalidFreight classifies pricing failures: a non-positive weight or an
// unknown or empty freight type code.
var ErrInvalidFreight = errors.New("invalid freight")

// InvalidFreightError carries the human-readable reason a freight could not be
// priced. It unwraps to ErrInvalidFreight.
type InvalidFreightError struct {
	Message string
}

func NewInvalidFreightError(message string) *InvalidFreightError {
	return &InvalidFreightError{Message: message}
}

func NewUnknownFreightTypeError(code string) *InvalidFreightError {
	return &InvalidFreightError{Message: fmt.Sprintf("unknown freight type: %s", code)}
}

func (e *InvalidFreightError) Error() string {
	return e.Message
}

func (e *InvalidFreightError) Unwrap() error {
	return ErrInvalidFreight
}
