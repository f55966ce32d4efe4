package queries

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ApplyPromotionsQueryHandler runs the promotion pipeline and prices both the
// original and the promoted delivery.
type ApplyPromotionsQueryHandler struct {
	resolver   ports.FreightResolver
	promotions PromotionApplier
}

func NewApplyPromotionsQueryHandler(
	resolver ports.FreightResolver,
	promotions PromotionApplier,
) (ApplyPromotionsQueryHandler, error) {
	var err error
	if resolver == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("freight resolver"))
	}
	if promotions == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("promotion applier"))
	}
	if err != nil {
		return ApplyPromotionsQueryHandler{}, err
	}

	return ApplyPromotionsQueryHandler{resolver: resolver, promotions: promotions}, nil
}

// Handle prices both deliveries with the calculator selected by the original
// delivery's freight type code.
func (h ApplyPromotionsQueryHandler) Handle(
	ctx context.Context,
	query ApplyPromotionsQuery,
) (res ApplyPromotionsQueryResponse, err error) {
	if err = query.Validate(); err != nil {
		return ApplyPromotionsQueryResponse{}, err
	}

	_, span := startSpan(ctx, "ApplyPromotions", query.Delivery())
	defer func() { endSpan(span, err) }()

	original := query.Delivery()
	promoted, err := h.promotions.ApplyAll(original)
	if err != nil {
		return ApplyPromotionsQueryResponse{}, err
	}

	calculator, err := h.resolver.Resolve(original.FreightType())
	if err != nil {
		return ApplyPromotionsQueryResponse{}, err
	}

	originalPrice, err := calculator.Calculate(original.Weight())
	if err != nil {
		return ApplyPromotionsQueryResponse{}, err
	}

	promotionalPrice, err := calculator.Calculate(promoted.Weight())
	if err != nil {
		return ApplyPromotionsQueryResponse{}, err
	}

	return ApplyPromotionsQueryResponse{
		Original:         original,
		OriginalPrice:    originalPrice,
		Promotional:      promoted,
		PromotionalPrice: promotionalPrice,
		PromotionApplied: original.Weight() != promoted.Weight(),
		Savings:          originalPrice - promotionalPrice,
	}, nil
}
