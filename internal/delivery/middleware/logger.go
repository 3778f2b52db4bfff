package middleware

import (
	"log/slog"

	"jobboard/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access-log record per request through slog-echo.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware.
// Probe and scrape endpoints are excluded; debug mode adds request headers.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	ignored := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		ignored = append(ignored, cfg.Metrics.Path)
	}

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:      slog.LevelInfo,
			ClientErrorLevel:  slog.LevelWarn,
			ServerErrorLevel:  slog.LevelError,
			WithUserAgent:     true,
			WithRequestID:     true,
			WithRequestHeader: cfg.Env.Debug,
			Filters:           []slogecho.Filter{slogecho.IgnorePath(ignored...)},
		}),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}
