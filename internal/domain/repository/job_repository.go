package repository

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"
)

// ErrJobNotFound is returned when a job posting does not exist.
var ErrJobNotFound = errors.New("job posting not found")

// JobFilter narrows FindByFilter. Zero-valued fields are ignored.
type JobFilter struct {
	PostedBy *entity.AccountID
	Company  string
	Limit    int
	Offset   int
}

// JobRepository is the resource store for job postings.
type JobRepository interface {
	// Create persists a new posting. A zero ID is replaced by a generated one.
	Create(ctx context.Context, job *entity.JobPosting) error

	// FindByID retrieves a single posting, or ErrJobNotFound.
	FindByID(ctx context.Context, id entity.JobID) (*entity.JobPosting, error)

	// FindByFilter lists postings matching the filter, newest first.
	FindByFilter(ctx context.Context, filter JobFilter) ([]*entity.JobPosting, error)

	// Update writes the mutable fields of an existing posting. PostedBy is never written.
	Update(ctx context.Context, job *entity.JobPosting) error

	// Delete permanently removes a posting, or returns ErrJobNotFound.
	Delete(ctx context.Context, id entity.JobID) error
}
