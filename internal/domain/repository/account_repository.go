// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken is returned when an insert collides with the unique email index.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken is returned when an insert collides with the unique username index.
	ErrUsernameTaken = errors.New("username already registered")
)

// AccountRepository is the credential store.
// Uniqueness of email and username is enforced by the storage itself, so a Create that loses
// a race against a concurrent registration fails with ErrEmailTaken or ErrUsernameTaken.
type AccountRepository interface {
	// Create persists a new account. A zero ID is replaced by a generated one.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its identifier.
	FindByID(ctx context.Context, id entity.AccountID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its (normalised) email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
}
