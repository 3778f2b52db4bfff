package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Authenticator usecase.Authenticator
	Logger        *slog.Logger
}

// AuthMiddleware resolves the caller from the bearer token.
type AuthMiddleware struct {
	authenticator usecase.Authenticator
	logger        *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: params.Authenticator,
		logger:        params.Logger,
	}
}

// Authenticate rejects the request unless it carries a valid bearer token, and stores
// the caller's account id for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

		accountID, err := m.authenticator.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetAccountID(c, accountID)

		return next(c)
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// Any other scheme yields an empty token.
func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}

	return strings.TrimSpace(token)
}
