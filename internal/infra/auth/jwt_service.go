// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
)

const tokenIssuer = "jobboard"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // HMAC key, read-only after construction.
	ttl    time.Duration    // Lifetime of every issued token.
	now    func() time.Time // Clock used for iat/exp and verification.
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret fails construction so the application never starts without one.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithClock(cfg, time.Now)
}

// NewJWTServiceWithClock is NewJWTService with an injectable clock.
func NewJWTServiceWithClock(cfg *config.Config, now func() time.Time) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, service.ErrSigningKeyMissing
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.TokenTTL(),
		now:    now,
	}, nil
}

// Ready reports whether tokens can be signed.
func (s *jwtService) Ready() error {
	if len(s.secret) == 0 {
		return service.ErrSigningKeyMissing
	}

	return nil
}

// Issue signs an HS256 token for the account. Each token carries a random id, so two
// tokens issued for the same account within the same second still differ.
func (s *jwtService) Issue(accountID entity.AccountID) (*service.IssuedToken, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify checks the signature and expiry of a token.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	accountID, err := entity.ParseAccountID(claims.Subject)
	if err != nil || accountID.IsZero() {
		return nil, errors.Wrap(service.ErrTokenInvalid, "token subject is not an account id")
	}
	claims.AccountID = accountID

	return claims, nil
}
