// Package queries contains the read-only use cases exposed at the boundary:
// pricing a delivery, rendering its label, applying promotions and listing the
// freight types. Each operation is a Query built by its constructor and run by
// the matching QueryHandler.
package queries

import (
	"logistics/internal/core/domain/model/delivery"
)

// Domain collaborators used by the query handlers.
type (
	// LabelGenerator renders shipping documents. services.LabelService implements it.
	LabelGenerator interface {
		GenerateLabel(d *delivery.Delivery) (string, error)
		GenerateOrderSummary(d *delivery.Delivery) (string, error)
	}

	// PromotionApplier runs the promotion rules. promotion.Pipeline implements it.
	PromotionApplier interface {
		ApplyAll(d *delivery.Delivery) (*delivery.Delivery, error)
	}
)
