package queries

import (
	"context"

	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ListFreightTypesQueryHandler reads the freight types from the catalogue.
type ListFreightTypesQueryHandler struct {
	catalog ports.FreightCatalog
}

func NewListFreightTypesQueryHandler(catalog ports.FreightCatalog) (ListFreightTypesQueryHandler, error) {
	if catalog == nil {
		return ListFreightTypesQueryHandler{}, errs.NewValueIsRequiredError("freight catalog")
	}
	return ListFreightTypesQueryHandler{catalog: catalog}, nil
}

func (h ListFreightTypesQueryHandler) Handle(
	ctx context.Context,
	query ListFreightTypesQuery,
) (types []freight.Descriptor, err error) {
	if err = query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := startSpan(ctx, "ListFreightTypes", nil)
	defer func() { endSpan(span, err) }()

	return h.catalog.List(ctx)
}
