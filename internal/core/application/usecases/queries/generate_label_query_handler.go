package queries

import (
	"context"

	"logistics/internal/pkg/errs"
)

// GenerateLabelQueryHandler renders both shipping documents of a delivery.
type GenerateLabelQueryHandler struct {
	labels LabelGenerator
}

func NewGenerateLabelQueryHandler(labels LabelGenerator) (GenerateLabelQueryHandler, error) {
	if labels == nil {
		return GenerateLabelQueryHandler{}, errs.NewValueIsRequiredError("label generator")
	}
	return GenerateLabelQueryHandler{labels: labels}, nil
}

func (h GenerateLabelQueryHandler) Handle(
	ctx context.Context,
	query GenerateLabelQuery,
) (res GenerateLabelQueryResponse, err error) {
	if err = query.Validate(); err != nil {
		return GenerateLabelQueryResponse{}, err
	}

	_, span := startSpan(ctx, "GenerateLabel", query.Delivery())
	defer func() { endSpan(span, err) }()

	label, err := h.labels.GenerateLabel(query.Delivery())
	if err != nil {
		return GenerateLabelQueryResponse{}, err
	}

	summary, err := h.labels.GenerateOrderSummary(query.Delivery())
	if err != nil {
		return GenerateLabelQueryResponse{}, err
	}

	return GenerateLabelQueryResponse{
		Delivery: query.Delivery(),
		Label:    label,
		Summary:  summary,
	}, nil
}
