package queries

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/guard"
)

var ErrGenerateLabelQueryIsNotConstructed = errors.New(
	"GenerateLabelQuery must be created via NewGenerateLabelQuery constructor",
)

// GenerateLabelQuery asks for the shipping label and order summary of a delivery.
type GenerateLabelQuery struct {
	delivery *delivery.Delivery

	guard guard.ConstructorGuard
}

func NewGenerateLabelQuery(d *delivery.Delivery) (GenerateLabelQuery, error) {
	if err := d.Validate(); err != nil {
		return GenerateLabelQuery{}, err
	}
	return GenerateLabelQuery{delivery: d, guard: guard.NewConstructorGuard()}, nil
}

func (q GenerateLabelQuery) Validate() error {
	return q.guard.Validate(ErrGenerateLabelQueryIsNotConstructed)
}

func (q GenerateLabelQuery) Delivery() *delivery.Delivery {
	return q.delivery
}

type GenerateLabelQueryResponse struct {
	Delivery *delivery.Delivery
	Label    string
	Summary  string
}
