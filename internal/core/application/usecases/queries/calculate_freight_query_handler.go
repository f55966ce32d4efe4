package queries

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CalculateFreightQueryHandler prices a delivery with the calculator its
// freight type code selects.
type CalculateFreightQueryHandler struct {
	resolver ports.FreightResolver
}

func NewCalculateFreightQueryHandler(resolver ports.FreightResolver) (CalculateFreightQueryHandler, error) {
	if resolver == nil {
		return CalculateFreightQueryHandler{}, errs.NewValueIsRequiredError("freight resolver")
	}
	return CalculateFreightQueryHandler{resolver: resolver}, nil
}

// Handle returns freight.ErrInvalidFreight kinds for unknown codes and
// delivery.ErrInvalidDelivery kinds for malformed queries.
func (h CalculateFreightQueryHandler) Handle(
	ctx context.Context,
	query CalculateFreightQuery,
) (res CalculateFreightQueryResponse, err error) {
	if err = query.Validate(); err != nil {
		return CalculateFreightQueryResponse{}, err
	}

	_, span := startSpan(ctx, "CalculateFreight", query.Delivery())
	defer func() { endSpan(span, err) }()

	calculator, err := h.resolver.Resolve(query.Delivery().FreightType())
	if err != nil {
		return CalculateFreightQueryResponse{}, err
	}

	price, err := calculator.Calculate(query.Delivery().Weight())
	if err != nil {
		return CalculateFreightQueryResponse{}, err
	}

	return CalculateFreightQueryResponse{Delivery: query.Delivery(), Price: price}, nil
}
