package promotion

import "logistics/internal/core/domain/model/delivery"

// Rule is a predicate plus a transform over a Delivery.
// Apply must return its input unchanged when IsApplicable is false.
type Rule interface {
	Name() string
	IsApplicable(d *delivery.Delivery) bool
	Apply(d *delivery.Delivery) (*delivery.Delivery, error)
}

const (
	// WeightReductionThreshold is the weight a delivery must exceed to qualify.
	WeightReductionThreshold = 10.0
	// WeightReductionAmount is subtracted from qualifying weights.
	WeightReductionAmount = 1.0
)

// WeightReduction takes one unit off the billable weight of deliveries heavier
// than WeightReductionThreshold.
type WeightReduction struct{}

func NewWeightReduction() WeightReduction {
	return WeightReduction{}
}

func (WeightReduction) Name() string {
	return "weight_reduction"
}

func (WeightReduction) IsApplicable(d *delivery.Delivery) bool {
	if d.Validate() != nil {
		return false
	}
	return d.Weight() > WeightReductionThreshold
}

func (r WeightReduction) Apply(d *delivery.Delivery) (*delivery.Delivery, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !r.IsApplicable(d) {
		return d, nil
	}
	return d.WithWeight(d.Weight() - WeightReductionAmount)
}
