package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"jobboard/internal/delivery/api/response"
	deliverycontext "jobboard/internal/delivery/context"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.AppError(c, appErr, errorDetails(err, appErr))

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Unknown errors are logged with their cause and answered generically.
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

// errorDetails returns the explicit details of appErr or, for client errors, the context
// it was wrapped with.
func errorDetails(err error, appErr domainerrors.AppError) any {
	if details := appErr.Details(); details != "" {
		return details
	}

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		return nil
	}

	if wrapped, found := strings.CutSuffix(err.Error(), ": "+appErr.Error()); found && wrapped != "" {
		return wrapped
	}

	return nil
}
