package context

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetAccountID stores the authenticated caller in echo.Context and its request context.
func SetAccountID(c echo.Context, accountID entity.AccountID) {
	c.Set(string(KeyAccountID), accountID)
	c.SetRequest(c.Request().WithContext(WithAccountID(c.Request().Context(), accountID)))
}

// GetAccountID returns the authenticated caller resolved by the auth middleware.
func GetAccountID(c echo.Context) (entity.AccountID, bool) {
	accountID, ok := c.Get(string(KeyAccountID)).(entity.AccountID)
	if !ok || accountID.IsZero() {
		return entity.NilAccountID, false
	}

	return accountID, true
}

// WithAccountID returns a new context carrying the caller's account id.
func WithAccountID(ctx context.Context, accountID entity.AccountID) context.Context {
	return context.WithValue(ctx, KeyAccountID, accountID)
}

// GetAccountIDFromContext extracts the caller's account id from standard context.Context.
func GetAccountIDFromContext(ctx context.Context) (entity.AccountID, bool) {
	accountID, ok := ctx.Value(KeyAccountID).(entity.AccountID)

	return accountID, ok && !accountID.IsZero()
}
