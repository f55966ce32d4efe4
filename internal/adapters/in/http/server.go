package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Handlers groups the query handlers served over HTTP.
type Handlers struct {
	CalculateFreight queries.CalculateFreightQueryHandler
	GenerateLabel    queries.GenerateLabelQueryHandler
	ApplyPromotions  queries.ApplyPromotionsQueryHandler
	ListFreightTypes queries.ListFreightTypesQueryHandler
}

type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) (*Server, error) {
	var err error
	if m == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("metrics"))
	}
	if logger == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("logger"))
	}
	if err != nil {
		return nil, err
	}

	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}, nil
}

// CalculateFreight handles POST /api/v1/freight/calculate.
func (s *Server) CalculateFreight(c echo.Context) error {
	d, err := bindDelivery(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewCalculateFreightQuery(d)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	res, err := s.handlers.CalculateFreight.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	s.countQuote(d, metrics.OperationCalculate)
	return c.JSON(http.StatusOK, newPricedDelivery(res.Delivery, res.Price))
}

// GenerateLabel handles POST /api/v1/labels.
func (s *Server) GenerateLabel(c echo.Context) error {
	d, err := bindDelivery(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewGenerateLabelQuery(d)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	res, err := s.handlers.GenerateLabel.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	s.countQuote(d, metrics.OperationLabel)
	return c.JSON(http.StatusOK, LabelResponse{
		Delivery: res.Delivery.ToMap(),
		Label:    res.Label,
		Summary:  res.Summary,
	})
}

// ApplyPromotions handles POST /api/v1/promotions/apply.
func (s *Server) ApplyPromotions(c echo.Context) error {
	d, err := bindDelivery(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewApplyPromotionsQuery(d)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	res, err := s.handlers.ApplyPromotions.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	s.countQuote(d, metrics.OperationPromotions)
	if res.PromotionApplied {
		s.metrics.PromotionsAppliedTotal.Inc()
	}

	return c.JSON(http.StatusOK, PromotionResponse{
		Original:         newPricedDelivery(res.Original, res.OriginalPrice),
		Promotional:      newPricedDelivery(res.Promotional, res.PromotionalPrice),
		PromotionApplied: res.PromotionApplied,
		Savings:          roundPrice(res.Savings),
	})
}

// ListFreightTypes handles GET /api/v1/freight-types.
func (s *Server) ListFreightTypes(c echo.Context) error {
	types, err := s.handlers.ListFreightTypes.Handle(c.Request().Context(), queries.NewListFreightTypesQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(http.StatusOK, newFreightTypesResponse(types))
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "OK", Message: "logistics API is running"})
}

func (s *Server) countQuote(d *delivery.Delivery, operation string) {
	s.metrics.FreightQuotesTotal.WithLabelValues(strings.ToUpper(d.FreightType()), operation).Inc()
}

// bindDelivery decodes the request body and builds a validated delivery.
func bindDelivery(c echo.Context) (*delivery.Delivery, error) {
	if c.Request().ContentLength == 0 {
		return nil, errRequestBodyIsRequired
	}

	var req DeliveryRequest
	if err := c.Bind(&req); err != nil {
		return nil, errRequestBodyIsInvalid
	}

	return delivery.NewDelivery(req.Address, req.Weight, req.FreightType, req.Recipient)
}
