package middleware

import (
	"net/http"
	"time"

	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// HTTPObserver records served requests.
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// MetricsMiddleware counts requests by route template and final status.
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates the request metrics middleware.
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle records one observation per request.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		m.observer.ObserveHTTPRequest(c.Request().Method, route, statusOf(c, err), time.Since(start))

		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
