package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/primetrade/landing/internal/domain"
	"github.com/primetrade/landing/internal/middleware"
)

// setupErrorHandling installs the central HTTP error handler. Echo errors keep
// their status, domain lookups map to 404 and anything else is logged with a
// stack trace and answered with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			if he.Code >= http.StatusInternalServerError {
				logger.Error("HTTP error", "error", err, "status", he.Code)
			}
		case errors.Is(err, domain.ErrUnknownCTA):
			logger.Info("Not found", "error", err)
			he = echo.NewHTTPError(http.StatusNotFound)
		default:
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
			he = echo.NewHTTPError(http.StatusInternalServerError)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(he.Code)
		} else {
			respErr = c.String(he.Code, fmt.Sprint(he.Message))
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}
