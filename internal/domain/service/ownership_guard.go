package service

import (
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
)

// OwnershipGuard decides which job postings a caller may see and change.
type OwnershipGuard struct{}

// NewOwnershipGuard creates the guard.
func NewOwnershipGuard() *OwnershipGuard {
	return &OwnershipGuard{}
}

// CanMutate reports whether caller may update or delete job.
func (OwnershipGuard) CanMutate(caller entity.AccountID, job *entity.JobPosting) bool {
	if job == nil || caller.IsZero() {
		return false
	}

	return job.IsPostedBy(caller)
}

// ReadScope narrows a listing to the caller's own postings.
func (OwnershipGuard) ReadScope(caller entity.AccountID, filter repository.JobFilter) repository.JobFilter {
	owner := caller
	filter.PostedBy = &owner

	return filter
}
