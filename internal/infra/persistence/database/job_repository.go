package database

import (
	"context"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements repository.JobRepository using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// Create persists a new posting.
func (repo *jobRepository) Create(ctx context.Context, job *entity.JobPosting) error {
	jobM := fromJobDomain(job)
	if jobM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate job id")
		}
		jobM.ID = id
	}

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		return mapJobWriteError(err, "failed to create job posting")
	}

	job.ID = entity.JobID(jobM.ID)
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// FindByID retrieves a single posting.
func (repo *jobRepository) FindByID(ctx context.Context, id entity.JobID) (*entity.JobPosting, error) {
	var jobM model.JobPostingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id.UUID()).First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find job posting")
	}

	return toJobDomain(&jobM), nil
}

// FindByFilter lists postings newest first. UUIDv7 ids break ties between equal timestamps.
func (repo *jobRepository) FindByFilter(ctx context.Context, filter repository.JobFilter) ([]*entity.JobPosting, error) {
	query := repo.db.WithContext(ctx).Model(&model.JobPostingModel{})

	if filter.PostedBy != nil {
		query = query.Where("posted_by = ?", filter.PostedBy.UUID())
	}
	if filter.Company != "" {
		query = query.Where("company = ?", filter.Company)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var jobMs []*model.JobPostingModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&jobMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list job postings")
	}

	jobs := make([]*entity.JobPosting, 0, len(jobMs))
	for _, jobM := range jobMs {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

// Update writes the mutable columns. posted_by and created_at are never part of the update.
func (repo *jobRepository) Update(ctx context.Context, job *entity.JobPosting) error {
	now := repo.db.NowFunc()

	result := repo.db.WithContext(ctx).
		Model(&model.JobPostingModel{}).
		Where("id = ?", job.ID.UUID()).
		Updates(map[string]any{
			"title":       job.Title,
			"description": job.Description,
			"company":     job.Company,
			"last_date":   job.LastDate,
			"vacancies":   job.Vacancies,
			"updated_at":  now,
		})
	if result.Error != nil {
		return mapJobWriteError(result.Error, "failed to update job posting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	job.UpdatedAt = now

	return nil
}

// Delete permanently removes a posting.
func (repo *jobRepository) Delete(ctx context.Context, id entity.JobID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id.UUID()).Delete(&model.JobPostingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete job posting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

func mapJobWriteError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return errors.Wrap(repository.ErrAccountNotFound, "posted_by does not reference an account")
	}
	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toJobDomain(jobM *model.JobPostingModel) *entity.JobPosting {
	return &entity.JobPosting{
		ID:          entity.JobID(jobM.ID),
		Title:       jobM.Title,
		Description: jobM.Description,
		Company:     jobM.Company,
		LastDate:    jobM.LastDate.UTC(),
		Vacancies:   jobM.Vacancies,
		PostedBy:    entity.AccountID(jobM.PostedBy),
		CreatedAt:   jobM.CreatedAt,
		UpdatedAt:   jobM.UpdatedAt,
	}
}

func fromJobDomain(job *entity.JobPosting) *model.JobPostingModel {
	return &model.JobPostingModel{
		ID:          job.ID.UUID(),
		Title:       job.Title,
		Description: job.Description,
		Company:     job.Company,
		LastDate:    job.LastDate,
		Vacancies:   job.Vacancies,
		PostedBy:    job.PostedBy.UUID(),
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}
