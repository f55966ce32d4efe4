package freight

// Registry maps freight type codes to their calculators. It is seeded once by
// NewRegistry and never changes afterwards, so it can be shared between
// concurrent requests without locking.
type Registry struct {
	calculators map[Type]Calculator
	order       []Type
}

// NewRegistry returns the registry of the known freight types: EXP, PAD and ECO.
func NewRegistry() *Registry {
	known := []Calculator{
		ExpressCalculator{},
		StandardCalculator{},
		EconomyCalculator{},
	}

	r := &Registry{
		calculators: make(map[Type]Calculator, len(known)),
		order:       make([]Type, 0, len(known)),
	}
	for _, c := range known {
		r.calculators[c.Type()] = c
		r.order = append(r.order, c.Type())
	}
	return r
}

// Resolve returns the calculator for code, matching case-insensitively.
//
// Errors:
//   - ErrFreightTypeIsRequired when code is empty or blank
//   - an InvalidFreightError naming the original code when it is unknown
func (r *Registry) Resolve(code string) (Calculator, error) {
	t, err := ParseType(code)
	if err != nil {
		return nil, err
	}

	c, ok := r.calculators[t]
	if !ok {
		return nil, NewUnknownFreightTypeError(code)
	}
	return c, nil
}

// Types lists the registered codes in registration order.
func (r *Registry) Types() []Type {
	types := make([]Type, len(r.order))
	copy(types, r.order)
	return types
}
