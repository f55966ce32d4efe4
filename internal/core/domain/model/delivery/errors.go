package delivery

import "errors"

// ErrInvalidDelivery classifies every failure to build or use a Delivery.
var ErrInvalidDelivery = errors.New("invalid delivery")

// InvalidDeliveryError carries the human-readable reason a Delivery was rejected.
// It unwraps to ErrInvalidDelivery.
type InvalidDeliveryError struct {
	Message string
}

func NewInvalidDeliveryError(message string) *InvalidDeliveryError {
	return &InvalidDeliveryError{Message: message}
}

func (e *InvalidDeliveryError) Error() string {
	return e.Message
}

func (e *InvalidDeliveryError) Unwrap() error {
	return ErrInvalidDelivery
}
