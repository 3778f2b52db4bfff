package entity

import (
	"github.com/google/uuid"
)

// AccountID is the opaque identifier of an Account.
// Ownership decisions compare AccountID values directly, never their string forms.
type AccountID uuid.UUID

// JobID is the opaque identifier of a JobPosting.
type JobID uuid.UUID

// NilAccountID is the zero AccountID; it never identifies a stored account.
var NilAccountID AccountID

// ParseAccountID parses the canonical textual form of an AccountID.
func ParseAccountID(s string) (AccountID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilAccountID, err
	}

	return AccountID(id), nil
}

// UUID returns the underlying uuid value.
func (id AccountID) UUID() uuid.UUID { return uuid.UUID(id) }

// IsZero reports whether the id is unset.
func (id AccountID) IsZero() bool { return id == NilAccountID }

func (id AccountID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id AccountID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AccountID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// ParseJobID parses the canonical textual form of a JobID.
func ParseJobID(s string) (JobID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return JobID{}, err
	}

	return JobID(id), nil
}

// UUID returns the underlying uuid value.
func (id JobID) UUID() uuid.UUID { return uuid.UUID(id) }

// IsZero reports whether the id is unset.
func (id JobID) IsZero() bool { return id == JobID{} }

func (id JobID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id JobID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *JobID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}
