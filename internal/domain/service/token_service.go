package service

import (
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification and issuance failures. Callers outside the auth layer never see the
// difference between ErrTokenInvalid and ErrTokenExpired.
var (
	ErrTokenInvalid      = errors.New("token is invalid")
	ErrTokenExpired      = errors.New("token is expired")
	ErrSigningKeyMissing = errors.New("token signing key is not configured")
)

// Claims are the claims carried by a session token. The subject is the account id.
type Claims struct {
	AccountID entity.AccountID `json:"-"`
	jwt.RegisteredClaims
}

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService interface {
	// Issue signs a token embedding the account id, expiring after the configured lifetime.
	Issue(accountID entity.AccountID) (*IssuedToken, error)

	// Verify checks the signature and expiry of a token and returns its claims.
	// It returns ErrTokenExpired for expired tokens and ErrTokenInvalid for anything else.
	Verify(token string) (*Claims, error)

	// Ready reports ErrSigningKeyMissing when tokens cannot be signed.
	Ready() error
}
