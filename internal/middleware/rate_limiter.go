package middleware

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimiter limits each client IP to perSecond requests per second on the
// routes it's applied to. The burst is perSecond rounded up, and never below 1,
// so fractional rates still let a request through.
func RateLimiter(perSecond float64) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// An in-memory store is suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(perSecond),
			Burst: burstFor(perSecond),
		}),

		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "client", identifier)
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}

func burstFor(perSecond float64) int {
	return max(1, int(math.Ceil(perSecond)))
}
