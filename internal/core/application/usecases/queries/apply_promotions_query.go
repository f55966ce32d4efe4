package queries

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/guard"
)

var ErrApplyPromotionsQueryIsNotConstructed = errors.New(
	"ApplyPromotionsQuery must be created via NewApplyPromotionsQuery constructor",
)

// ApplyPromotionsQuery asks what a delivery costs before and after promotions.
type ApplyPromotionsQuery struct {
	delivery *delivery.Delivery

	guard guard.ConstructorGuard
}

func NewApplyPromotionsQuery(d *delivery.Delivery) (ApplyPromotionsQuery, error) {
	if err := d.Validate(); err != nil {
		return ApplyPromotionsQuery{}, err
	}
	return ApplyPromotionsQuery{delivery: d, guard: guard.NewConstructorGuard()}, nil
}

func (q ApplyPromotionsQuery) Validate() error {
	return q.guard.Validate(ErrApplyPromotionsQueryIsNotConstructed)
}

func (q ApplyPromotionsQuery) Delivery() *delivery.Delivery {
	return q.delivery
}

// ApplyPromotionsQueryResponse compares the original and promoted deliveries.
// Prices and Savings are unrounded.
//
// PromotionApplied is true only when the weights differ. A rule that changed
// another field without touching the weight would report false.
type ApplyPromotionsQueryResponse struct {
	Original         *delivery.Delivery
	OriginalPrice    float64
	Promotional      *delivery.Delivery
	PromotionalPrice float64
	PromotionApplied bool
	Savings          float64
}
