package model

import (
	"time"

	"github.com/google/uuid"
)

// JobPostingModel mirrors the 'job_postings' table. PostedBy references accounts.id
// without cascading deletes.
type JobPostingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	Company     string    `gorm:"type:varchar(200);not null;index"`
	LastDate    time.Time `gorm:"type:date;not null"`
	Vacancies   *int
	PostedBy    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (JobPostingModel) TableName() string {
	return "job_postings"
}
