// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"
)

// Account field limits. Username and email lengths are counted in characters and match
// the storage column widths; the password limit is bcrypt's input size in bytes.
const (
	MaxUsernameLength = 50
	MaxEmailLength    = 254
	MaxPasswordBytes  = 72
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by both registration and login. It never carries the password hash.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	Account   entity.PublicAccount
}

// AuthUsecase defines registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an account and issues its first token. Email uniqueness is checked
	// before username uniqueness; the first failing check decides the error.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and wrong password
	// fail with the same error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// CurrentAccount returns the public view of an authenticated caller.
	CurrentAccount(ctx context.Context, accountID entity.AccountID) (*entity.PublicAccount, error)
}

// Authenticator resolves the caller behind a bearer token.
type Authenticator interface {
	// Authenticate returns the account id embedded in a valid token. Missing, malformed,
	// forged and expired tokens all fail with the same unauthenticated error.
	Authenticate(ctx context.Context, rawToken string) (entity.AccountID, error)
}
