package queries

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/guard"
)

var ErrCalculateFreightQueryIsNotConstructed = errors.New(
	"CalculateFreightQuery must be created via NewCalculateFreightQuery constructor",
)

// CalculateFreightQuery asks for the freight price of one delivery.
//
// Example:
//
//	d, _ := delivery.NewDelivery("Rua A", 5, "EXP", "Maria")
//	query, _ := NewCalculateFreightQuery(d)
//	res, err := handler.Handle(ctx, query)
//	// res.Price == 17.5
type CalculateFreightQuery struct {
	delivery *delivery.Delivery

	guard guard.ConstructorGuard
}

// NewCalculateFreightQuery rejects nil or unconstructed deliveries.
func NewCalculateFreightQuery(d *delivery.Delivery) (CalculateFreightQuery, error) {
	if err := d.Validate(); err != nil {
		return CalculateFreightQuery{}, err
	}
	return CalculateFreightQuery{delivery: d, guard: guard.NewConstructorGuard()}, nil
}

func (q CalculateFreightQuery) Validate() error {
	return q.guard.Validate(ErrCalculateFreightQueryIsNotConstructed)
}

func (q CalculateFreightQuery) Delivery() *delivery.Delivery {
	return q.delivery
}

// CalculateFreightQueryResponse holds the unrounded price.
type CalculateFreightQueryResponse struct {
	Delivery *delivery.Delivery
	Price    float64
}
