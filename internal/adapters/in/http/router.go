package http

import (
	"errors"
	"log/slog"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const APIPrefix = "/api/v1"

type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	TracerProvider trace.TracerProvider
	Propagator     propagation.TextMapPropagator
	OpenAPI        *openapi3.T
}

func (c RouterConfig) validate() error {
	var err error
	if c.Logger == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("logger"))
	}
	if c.Metrics == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("metrics"))
	}
	if c.Gatherer == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("gatherer"))
	}
	if c.TracerProvider == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("tracer provider"))
	}
	if c.Propagator == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("propagator"))
	}
	if c.OpenAPI == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("openapi document"))
	}
	return err
}

// NewRouter mounts the server handlers and the operational endpoints on a new
// echo instance.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	if server == nil {
		return nil, errs.NewValueIsRequiredError("server")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(AccessLog(logger))
	e.Use(Tracing(cfg.TracerProvider, cfg.Propagator))
	e.Use(Metrics(cfg.Metrics))

	api := e.Group(APIPrefix, OpenAPIValidator(cfg.OpenAPI, logger))
	api.POST("/freight/calculate", server.CalculateFreight)
	api.POST("/labels", server.GenerateLabel)
	api.POST("/promotions/apply", server.ApplyPromotions)
	api.GET("/freight-types", server.ListFreightTypes)

	e.GET("/health", server.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
