package http

import (
	"math"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/freight"
)

// DeliveryRequest is the body shared by the delivery operations.
type DeliveryRequest struct {
	Address     string  `json:"address"`
	Weight      float64 `json:"weight"`
	FreightType string  `json:"freight_type"`
	Recipient   string  `json:"recipient"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PricedDelivery struct {
	Delivery     map[string]any `json:"delivery"`
	FreightPrice float64        `json:"freight_price"`
}

type LabelResponse struct {
	Delivery map[string]any `json:"delivery"`
	Label    string         `json:"label"`
	Summary  string         `json:"summary"`
}

type PromotionResponse struct {
	Original         PricedDelivery `json:"original"`
	Promotional      PricedDelivery `json:"promotional"`
	PromotionApplied bool           `json:"promotion_applied"`
	Savings          float64        `json:"savings"`
}

type FreightType struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FreightTypesResponse struct {
	Types []FreightType `json:"types"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newPricedDelivery(d *delivery.Delivery, price float64) PricedDelivery {
	return PricedDelivery{Delivery: d.ToMap(), FreightPrice: roundPrice(price)}
}

func newFreightTypesResponse(types []freight.Descriptor) FreightTypesResponse {
	res := FreightTypesResponse{Types: make([]FreightType, len(types))}
	for i, t := range types {
		res.Types[i] = FreightType{Code: t.Code.String(), Name: t.Name, Description: t.Description}
	}
	return res
}

// roundPrice rounds to cents. Prices are only rounded when they leave the service.
// Values too large to scale by 100 carry no fractional cents and are returned as is.
func roundPrice(v float64) float64 {
	rounded := math.Round(v*100) / 100
	if math.IsInf(rounded, 0) {
		return v
	}
	return rounded
}
