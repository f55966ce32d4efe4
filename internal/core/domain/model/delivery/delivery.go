package delivery

import (
	"math"
	"strings"

	"logistics/internal/pkg/guard"
)

var (
	ErrAddressIsRequired        = NewInvalidDeliveryError("address must not be null or empty")
	ErrWeightIsNotPositive      = NewInvalidDeliveryError("weight must be a positive value")
	ErrFreightTypeIsRequired    = NewInvalidDeliveryError("freight type must not be null or empty")
	ErrRecipientIsRequired      = NewInvalidDeliveryError("recipient must not be null or empty")
	ErrDeliveryIsNotConstructed = NewInvalidDeliveryError("Delivery must be created via NewDelivery constructor")
)

// Delivery is a single validated shipment request.
//
// Fields are private and only readable through getters, so a Delivery cannot
// change after NewDelivery returns it. Code that needs a different weight calls
// WithWeight and receives a new instance.
type Delivery struct {
	address     string
	weight      float64
	freightType string
	recipient   string

	guard guard.ConstructorGuard
}

// NewDelivery validates the request fields and builds a Delivery.
//
// The freight type code is stored exactly as given; lookups against the
// freight registry are case-insensitive.
//
// Example:
//
//	d, err := NewDelivery("Rua A, 100", 12, "PAD", "João")
//	if errors.Is(err, ErrInvalidDelivery) {
//	    // reject the request
//	}
func NewDelivery(address string, weight float64, freightType string, recipient string) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	// Checked one by one: the first violated rule is the one reported.
	if err := d.setAddress(address); err != nil {
		return nil, err
	}
	if err := d.setWeight(weight); err != nil {
		return nil, err
	}
	if err := d.setFreightType(freightType); err != nil {
		return nil, err
	}
	if err := d.setRecipient(recipient); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate reports ErrDeliveryIsNotConstructed for nil or zero value deliveries.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) Address() string {
	return d.address
}

func (d *Delivery) Weight() float64 {
	return d.weight
}

// FreightType returns the freight type code as supplied by the caller.
func (d *Delivery) FreightType() string {
	return d.freightType
}

func (d *Delivery) Recipient() string {
	return d.recipient
}

// WithWeight returns a new Delivery equal to d except for its weight.
// The result goes through NewDelivery, so an invalid weight is rejected.
func (d *Delivery) WithWeight(weight float64) (*Delivery, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return NewDelivery(d.address, weight, d.freightType, d.recipient)
}

// ToMap returns the transport representation of the delivery.
func (d *Delivery) ToMap() map[string]any {
	return map[string]any{
		"address":      d.address,
		"weight":       d.weight,
		"freight_type": d.freightType,
		"recipient":    d.recipient,
	}
}

func (d *Delivery) setAddress(address string) error {
	if isBlank(address) {
		return ErrAddressIsRequired
	}
	d.address = address
	return nil
}

func (d *Delivery) setWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return ErrWeightIsNotPositive
	}
	d.weight = weight
	return nil
}

func (d *Delivery) setFreightType(freightType string) error {
	if isBlank(freightType) {
		return ErrFreightTypeIsRequired
	}
	d.freightType = freightType
	return nil
}

func (d *Delivery) setRecipient(recipient string) error {
	if isBlank(recipient) {
		return ErrRecipientIsRequired
	}
	d.recipient = recipient
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
