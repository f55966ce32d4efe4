package promotion

import "logistics/internal/core/domain/model/delivery"

// Pipeline applies an ordered list of rules. Each rule sees the delivery
// produced by the rules before it, not the original input.
//
// The rule list is fixed at construction; a Pipeline is safe for concurrent use.
type Pipeline struct {
	rules []Rule
}

// NewPipeline copies rules so later changes to the caller's slice have no effect.
//
// Example:
//
//	pipeline := NewPipeline(NewWeightReduction())
//	promoted, err := pipeline.ApplyAll(d)
func NewPipeline(rules ...Rule) *Pipeline {
	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return &Pipeline{rules: kept}
}

// ApplyAll threads d through every applicable rule and returns the final
// delivery. When no rule applies the input itself is returned.
func (p *Pipeline) ApplyAll(d *delivery.Delivery) (*delivery.Delivery, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	current := d
	for _, rule := range p.rules {
		if !rule.IsApplicable(current) {
			continue
		}

		next, err := rule.Apply(current)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return current, nil
}

// RuleNames lists the configured rules in application order.
func (p *Pipeline) RuleNames() []string {
	names := make([]string, len(p.rules))
	for i, r := range p.rules {
		names[i] = r.Name()
	}
	return names
}
