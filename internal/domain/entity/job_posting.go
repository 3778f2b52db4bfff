package entity

import (
	"time"
)

// JobPosting is a vacancy published by an account.
// PostedBy is set once at creation and decides who may change or remove the posting.
type JobPosting struct {
	ID          JobID
	Title       string
	Description string
	Company     string
	LastDate    time.Time // Application deadline, date precision.
	Vacancies   *int      // Optional.
	PostedBy    AccountID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPostedBy reports whether the posting belongs to the given account.
func (j *JobPosting) IsPostedBy(accountID AccountID) bool {
	return j.PostedBy == accountID
}
