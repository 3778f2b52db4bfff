package usecase

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"
)

// Listing page sizes.
const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// CreateJobInput represents the input for publishing a job posting.
type CreateJobInput struct {
	Title       string
	Description string
	Company     string
	LastDate    time.Time
	Vacancies   *int
}

// UpdateJobInput represents a partial update; nil fields are left unchanged.
// ClearVacancies removes the vacancy count and wins over Vacancies.
// The owner of a posting can never be changed.
type UpdateJobInput struct {
	Title          *string
	Description    *string
	Company        *string
	LastDate       *time.Time
	Vacancies      *int
	ClearVacancies bool
}

// ListJobsInput selects a page of postings.
type ListJobsInput struct {
	Company string
	Limit   int
	Offset  int
}

// JobUsecase defines job posting management for an authenticated caller.
type JobUsecase interface {
	CreateJob(ctx context.Context, caller entity.AccountID, input *CreateJobInput) (*entity.JobPosting, error)

	// ListOwnJobs returns only the caller's postings.
	ListOwnJobs(ctx context.Context, caller entity.AccountID, input *ListJobsInput) ([]*entity.JobPosting, error)

	// BrowseJobs returns postings of every account, optionally filtered by company.
	BrowseJobs(ctx context.Context, input *ListJobsInput) ([]*entity.JobPosting, error)

	// GetOwnJob returns a posting the caller owns.
	GetOwnJob(ctx context.Context, caller entity.AccountID, jobID entity.JobID) (*entity.JobPosting, error)

	// UpdateJob and DeleteJob report a missing posting before an ownership mismatch.
	UpdateJob(ctx context.Context, caller entity.AccountID, jobID entity.JobID, input *UpdateJobInput) (*entity.JobPosting, error)
	DeleteJob(ctx context.Context, caller entity.AccountID, jobID entity.JobID) error
}
