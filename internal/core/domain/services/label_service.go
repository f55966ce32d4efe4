package services

import (
	"fmt"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	ErrLabelDeliveryIsRequired   = delivery.NewInvalidDeliveryError("delivery must not be null to generate label")
	ErrSummaryDeliveryIsRequired = delivery.NewInvalidDeliveryError("delivery must not be null to generate summary")
)

// LabelService renders shipping documents for a delivery.
//
// Every call resolves the calculator and prices the delivery again; nothing is
// cached between the label and the summary.
//
// Example:
//
//	svc, _ := NewLabelService(freight.NewRegistry())
//	d, _ := delivery.NewDelivery("Rua A", 12, "PAD", "João")
//	label, err := svc.GenerateLabel(d)
//	// Recipient: João
//	// Address: Rua A
//	// Freight: R$14.40
type LabelService struct {
	resolver ports.FreightResolver
}

// NewLabelService returns an errs.ValueIsRequiredError when resolver is nil.
func NewLabelService(resolver ports.FreightResolver) (*LabelService, error) {
	if resolver == nil {
		return nil, errs.NewValueIsRequiredError("freight resolver")
	}
	return &LabelService{resolver: resolver}, nil
}

// GenerateLabel returns the multi-line shipping label: recipient, address and
// freight value with two decimals.
func (s *LabelService) GenerateLabel(d *delivery.Delivery) (string, error) {
	if d.Validate() != nil {
		return "", ErrLabelDeliveryIsRequired
	}

	price, err := s.price(d)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Recipient: %s\nAddress: %s\nFreight: %s", d.Recipient(), d.Address(), formatCurrency(price)), nil
}

// GenerateOrderSummary returns a single line naming the recipient, the freight
// type code and the freight value.
func (s *LabelService) GenerateOrderSummary(d *delivery.Delivery) (string, error) {
	if d.Validate() != nil {
		return "", ErrSummaryDeliveryIsRequired
	}

	price, err := s.price(d)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Order for %s with freight type %s worth %s", d.Recipient(), d.FreightType(), formatCurrency(price)), nil
}

func (s *LabelService) price(d *delivery.Delivery) (float64, error) {
	calculator, err := s.resolver.Resolve(d.FreightType())
	if err != nil {
		return 0, err
	}
	return calculator.Calculate(d.Weight())
}

func formatCurrency(value float64) string {
	return fmt.Sprintf("R$%.2f", value)
}
