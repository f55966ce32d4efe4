package ports

import (
	"context"

	"logistics/internal/core/domain/model/freight"
)

// FreightResolver selects the calculator for a freight type code.
// freight.Registry is the production implementation.
type FreightResolver interface {
	Resolve(code string) (freight.Calculator, error)
}

// FreightCatalog publishes the display information of the supported freight types.
type FreightCatalog interface {
	List(ctx context.Context) ([]freight.Descriptor, error)
}
