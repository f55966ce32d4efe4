// Package metrics defines the Prometheus collectors of the logistics service.
// Collectors are registered on an injected registerer so tests can use a fresh
// registry instead of the global one.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	FreightQuotesTotalName     = "freight_quotes_total"
	PromotionsAppliedTotalName = "promotions_applied_total"
)

// Operation labels for FreightQuotesTotal.
const (
	OperationCalculate  = "calculate"
	OperationLabel      = "label"
	OperationPromotions = "promotions"
)

type Metrics struct {
	// HTTPRequestsTotal counts finished requests by method, route template and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDurationSeconds observes request latency by method and route template.
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	HTTPInflightRequests prometheus.Gauge

	// FreightQuotesTotal counts successfully priced deliveries by upper-case
	// freight type code and boundary operation.
	FreightQuotesTotal *prometheus.CounterVec

	// PromotionsAppliedTotal counts promotion requests whose weight changed.
	PromotionsAppliedTotal prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency distributions.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPInflightRequests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_inflight_requests",
				Help: "Current number of in-flight HTTP requests.",
			},
		),
		FreightQuotesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: FreightQuotesTotalName,
				Help: "Total number of priced deliveries.",
			},
			[]string{"freight_type", "operation"},
		),
		PromotionsAppliedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: PromotionsAppliedTotalName,
				Help: "Total number of deliveries whose weight a promotion reduced.",
			},
		),
	}

	if err := errors.Join(
		reg.Register(m.HTTPRequestsTotal),
		reg.Register(m.HTTPRequestDurationSeconds),
		reg.Register(m.HTTPInflightRequests),
		reg.Register(m.FreightQuotesTotal),
		reg.Register(m.PromotionsAppliedTotal),
	); err != nil {
		return nil, err
	}

	return m, nil
}
