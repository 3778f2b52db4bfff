package auth

import (
	"strings"
	"testing"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestJWTService(t *testing.T, clock *fakeClock) service.TokenService {
	t.Helper()

	svc, err := NewJWTServiceWithClock(newTestConfig(testSecret, time.Hour), clock.Now)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Hour))

	assert.ErrorIs(t, err, service.ErrSigningKeyMissing)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)
	accountID := entity.AccountID(uuid.New())

	issued, err := svc.Issue(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, clock.now.Add(time.Hour), issued.ExpiresAt)
	assert.NoError(t, svc.Ready())

	clock.now = clock.now.Add(59 * time.Minute)
	claims, err := svc.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, accountID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_IssueTwiceDiffers(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)
	accountID := entity.AccountID(uuid.New())

	first, err := svc.Issue(accountID)
	require.NoError(t, err)
	second, err := svc.Issue(accountID)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	for _, tok := range []string{first.Token, second.Token} {
		claims, err := svc.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, accountID, claims.AccountID)
	}
}

func TestJWTService_VerifyExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	issued, err := svc.Issue(entity.AccountID(uuid.New()))
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour + time.Second)
	claims, err := svc.Verify(issued.Token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.NotErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyRejects(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, clock)
	accountID := entity.AccountID(uuid.New())

	otherKey, err := NewJWTServiceWithClock(newTestConfig("a-completely-different-signing-key", time.Hour), clock.Now)
	require.NoError(t, err)
	foreign, err := otherKey.Issue(accountID)
	require.NoError(t, err)

	valid, err := svc.Issue(accountID)
	require.NoError(t, err)
	parts := strings.Split(valid.Token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(clock.now),
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	notAnAccount := signRaw(t, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(clock.now),
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	})

	noExpiry := signRaw(t, jwt.RegisteredClaims{
		Issuer:   tokenIssuer,
		Subject:  accountID.String(),
		IssuedAt: jwt.NewNumericDate(clock.now),
	})

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "malformed", token: "clearly-not-a-jwt-token-format"},
		{name: "different key", token: foreign.Token},
		{name: "tampered signature", token: tampered},
		{name: "alg none", token: noneToken},
		{name: "subject is not an account id", token: notAnAccount},
		{name: "missing expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, service.ErrTokenInvalid)
		})
	}
}

func TestJWTService_ZeroValueNotReady(t *testing.T) {
	svc := &jwtService{now: time.Now}

	assert.ErrorIs(t, svc.Ready(), service.ErrSigningKeyMissing)

	_, err := svc.Issue(entity.AccountID(uuid.New()))
	assert.ErrorIs(t, err, service.ErrSigningKeyMissing)
}

func signRaw(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}
