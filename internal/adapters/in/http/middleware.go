package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"logistics/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "logistics/internal/adapters/in/http"
	unmatchedRoute      = "UNMATCHED"
)

func routeOf(c echo.Context) string {
	if route := c.Path(); route != "" {
		return route
	}
	return unmatchedRoute
}

// AccessLog writes one line per finished request.
func AccessLog(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			logger.InfoContext(req.Context(), "HTTP request",
				"method", req.Method,
				"path", req.URL.Path,
				"route", routeOf(c),
				"status", c.Response().Status,
				"latency", time.Since(start),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

// Tracing starts a server span per request and stores it in the request
// context, continuing a trace propagated by the caller when present.
func Tracing(tp trace.TracerProvider, propagator propagation.TextMapPropagator) echo.MiddlewareFunc {
	tracer := tp.Tracer(instrumentationName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route := routeOf(c)

			ctx := propagator.Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			ctx, span := tracer.Start(ctx, req.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(req.Method),
					semconv.HTTPRoute(route),
					semconv.URLPath(req.URL.Path),
				),
			)
			defer span.End()

			c.SetRequest(req.WithContext(ctx))
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			span.SetAttributes(semconv.HTTPResponseStatusCode(status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
			return nil
		}
	}
}

// Metrics records request counts, latency and in-flight requests by route template.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.HTTPInflightRequests.Inc()
			defer m.HTTPInflightRequests.Dec()

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			method := c.Request().Method
			route := routeOf(c)
			m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// OpenAPIValidator checks requests against the operation declared for the
// matched route. Routes absent from the document pass through unchecked.
func OpenAPIValidator(doc *openapi3.T, logger *slog.Logger) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			pathItem := doc.Paths.Value(c.Path())
			if pathItem == nil {
				return next(c)
			}
			operation := pathItem.GetOperation(req.Method)
			if operation == nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: map[string]string{},
				Route: &routers.Route{
					Spec:      doc,
					Path:      c.Path(),
					PathItem:  pathItem,
					Method:    req.Method,
					Operation: operation,
				},
				Options: options,
			}

			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				logger.DebugContext(req.Context(), "Request rejected by OpenAPI validation",
					"route", c.Path(),
					"error", err,
				)
				return validationError(err)
			}
			return next(c)
		}
	}
}

func validationError(err error) error {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.RequestBody != nil && errors.Is(err, openapi3filter.ErrInvalidRequired) {
		return errRequestBodyIsRequired
	}
	return errRequestBodyIsInvalid
}
