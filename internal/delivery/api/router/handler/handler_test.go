package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/validator"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

// asCaller stands in for the auth middleware.
func asCaller(accountID entity.AccountID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetAccountID(c, accountID)

			return next(c)
		}
	}
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func newAccountID() entity.AccountID {
	return entity.AccountID(uuid.Must(uuid.NewV7()))
}

func newJobID() entity.JobID {
	return entity.JobID(uuid.Must(uuid.NewV7()))
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec, env := doJSON(t, e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, env.Error)
	require.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func intPtr(v int) *int {
	return &v
}
