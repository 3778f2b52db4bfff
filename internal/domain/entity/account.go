// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is a registered identity that can log in and own job postings.
// Username and Email are each unique across all accounts.
type Account struct {
	ID           AccountID // Assigned at creation, immutable.
	Username     string    // Display handle, unique.
	Email        string    // Login key, unique, stored lower-cased.
	PasswordHash string    // bcrypt encoding; never leaves the service layer.
	CreatedAt    time.Time
}

// PublicAccount is the view of an Account that may be returned to callers.
type PublicAccount struct {
	ID       AccountID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Public strips the password hash from the account.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
	}
}
