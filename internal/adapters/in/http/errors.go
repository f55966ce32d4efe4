package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/freight"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// requestError is a malformed request detected before the domain is reached.
type requestError struct {
	message string
}

func (e *requestError) Error() string {
	return e.message
}

var (
	errRequestBodyIsRequired = &requestError{message: "request body is required"}
	errRequestBodyIsInvalid  = &requestError{message: "invalid request body"}
)

// isClientError reports whether err was caused by the caller's input.
func isClientError(err error) bool {
	var reqErr *requestError
	return errors.As(err, &reqErr) ||
		errors.Is(err, delivery.ErrInvalidDelivery) ||
		errors.Is(err, freight.ErrInvalidFreight)
}

// writeError maps err to a JSON error response. Client errors expose their
// message; everything else is logged and reported as an opaque 500.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	if isClientError(err) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		return c.JSON(httpErr.Code, ErrorResponse{Error: http.StatusText(httpErr.Code)})
	}

	logger.ErrorContext(c.Request().Context(), "Request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
}

// NewHTTPErrorHandler renders errors returned by handlers and middleware in
// the same shape as the handlers' own error responses.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			var httpErr *echo.HTTPError
			code := http.StatusInternalServerError
			if errors.As(err, &httpErr) {
				code = httpErr.Code
			} else if isClientError(err) {
				code = http.StatusBadRequest
			}
			_ = c.NoContent(code)
			return
		}
		if writeErr := writeError(c, logger, err); writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Writing error response failed", "error", writeErr)
		}
	}
}
