package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "client id kept", header: "abc-123", wantKept: true},
		{name: "missing id generated", header: ""},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "control characters replaced", header: "bad\nid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInCtx string
			handler := NewRequestIDMiddleware(newDiscardLogger()).Process(func(c echo.Context) error {
				seenInCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenInCtx)
			if tt.wantKept {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_PassesThrough(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	e := echo.New()
	e.Use(NewLoggerMiddleware(newDiscardLogger(), cfg).Handle)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusTeapot, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
