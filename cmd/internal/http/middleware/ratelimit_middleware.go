package middleware

import (
	"boycottwatch/cmd/internal/utils/apierror"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewSubmissionRateLimiter throttles anonymous proposition submissions per
// source IP. The store is process-local and best effort; across instances
// each process keeps its own counters.
func NewSubmissionRateLimiter(perMinute float64, burst int, ttl time.Duration) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perMinute / 60.0),
		Burst:     burst,
		ExpiresIn: ttl,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(apierror.TooManyRequestsError.Code(), apierror.TooManyRequestsError)
		},
	})
}
