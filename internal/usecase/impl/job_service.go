package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type jobService struct {
	txManager repository.TransactionManager
	jobRepo   repository.JobRepository
	guard     *service.OwnershipGuard
	logger    *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	JobRepo   repository.JobRepository
	Guard     *service.OwnershipGuard
	Logger    *slog.Logger
}

// NewJobService creates a new job posting service instance.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	guard := params.Guard
	if guard == nil {
		guard = service.NewOwnershipGuard()
	}

	return &jobService{
		txManager: params.TxManager,
		jobRepo:   params.JobRepo,
		guard:     guard,
		logger:    params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateJob stores a posting owned by caller. The owner always comes from the caller,
// never from the input.
func (srv *jobService) CreateJob(ctx context.Context, caller entity.AccountID, input *usecase.CreateJobInput) (*entity.JobPosting, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}

	job := &entity.JobPosting{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Company:     strings.TrimSpace(input.Company),
		LastDate:    normalizeDate(input.LastDate),
		Vacancies:   input.Vacancies,
		PostedBy:    caller,
	}

	if err := validateJob(job); err != nil {
		return nil, err
	}

	if err := srv.jobRepo.Create(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to create job posting")
	}

	srv.log(ctx).Info("Job posting created",
		slog.String("jobID", job.ID.String()),
		slog.String("accountID", caller.String()),
	)

	return job, nil
}

// ListOwnJobs retrieves a page of the caller's postings.
func (srv *jobService) ListOwnJobs(ctx context.Context, caller entity.AccountID, input *usecase.ListJobsInput) ([]*entity.JobPosting, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}

	filter := srv.guard.ReadScope(caller, pageFilter(input))

	jobs, err := srv.jobRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own job postings")
	}

	return jobs, nil
}

// BrowseJobs retrieves a page of postings across all accounts.
func (srv *jobService) BrowseJobs(ctx context.Context, input *usecase.ListJobsInput) ([]*entity.JobPosting, error) {
	filter := pageFilter(input)
	if input != nil {
		filter.Company = strings.TrimSpace(input.Company)
	}

	jobs, err := srv.jobRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse job postings")
	}

	return jobs, nil
}

// GetOwnJob retrieves a single posting the caller owns.
func (srv *jobService) GetOwnJob(ctx context.Context, caller entity.AccountID, jobID entity.JobID) (*entity.JobPosting, error) {
	return srv.findOwned(ctx, srv.jobRepo, caller, jobID)
}

// UpdateJob applies a partial update to a posting the caller owns.
func (srv *jobService) UpdateJob(ctx context.Context, caller entity.AccountID, jobID entity.JobID, input *usecase.UpdateJobInput) (*entity.JobPosting, error) {
	var updated *entity.JobPosting

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		jobRepo := factory.JobRepo()

		job, err := srv.findOwned(ctx, jobRepo, caller, jobID)
		if err != nil {
			return err
		}

		applyJobUpdates(job, input)

		if err := validateJob(job); err != nil {
			return err
		}

		if err := jobRepo.Update(ctx, job); err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return domainerrors.ErrJobNotFound
			}

			return errors.Wrap(err, "failed to update job posting")
		}

		updated = job

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Job posting updated", slog.String("jobID", jobID.String()))

	return updated, nil
}

// DeleteJob permanently removes a posting the caller owns.
func (srv *jobService) DeleteJob(ctx context.Context, caller entity.AccountID, jobID entity.JobID) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		jobRepo := factory.JobRepo()

		if _, err := srv.findOwned(ctx, jobRepo, caller, jobID); err != nil {
			return err
		}

		if err := jobRepo.Delete(ctx, jobID); err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return domainerrors.ErrJobNotFound
			}

			return errors.Wrap(err, "failed to delete job posting")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Job posting deleted", slog.String("jobID", jobID.String()))

	return nil
}

// findOwned reports a missing posting before an ownership mismatch.
func (srv *jobService) findOwned(ctx context.Context, jobRepo repository.JobRepository, caller entity.AccountID, jobID entity.JobID) (*entity.JobPosting, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}

	job, err := jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job posting by id")
	}

	if !srv.guard.CanMutate(caller, job) {
		srv.log(ctx).Info("Job posting access denied",
			slog.String("jobID", jobID.String()),
			slog.String("accountID", caller.String()),
		)

		return nil, domainerrors.ErrNotAuthorized
	}

	return job, nil
}

// applyJobUpdates copies the non-nil fields of input onto job. PostedBy is not touched.
func applyJobUpdates(job *entity.JobPosting, input *usecase.UpdateJobInput) {
	if input == nil {
		return
	}
	if input.Title != nil {
		job.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		job.Description = strings.TrimSpace(*input.Description)
	}
	if input.Company != nil {
		job.Company = strings.TrimSpace(*input.Company)
	}
	if input.LastDate != nil {
		job.LastDate = normalizeDate(*input.LastDate)
	}
	switch {
	case input.ClearVacancies:
		job.Vacancies = nil
	case input.Vacancies != nil:
		vacancies := *input.Vacancies
		job.Vacancies = &vacancies
	}
}

func validateJob(job *entity.JobPosting) error {
	switch {
	case job.Title == "":
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	case job.Description == "":
		return domainerrors.ErrValidationFailed.WrapMessage("description is required")
	case job.Company == "":
		return domainerrors.ErrValidationFailed.WrapMessage("company is required")
	case job.LastDate.IsZero():
		return domainerrors.ErrValidationFailed.WrapMessage("lastDate is required")
	case job.Vacancies != nil && *job.Vacancies < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("vacancies must not be negative")
	}

	return nil
}

func pageFilter(input *usecase.ListJobsInput) repository.JobFilter {
	if input == nil {
		return repository.JobFilter{Limit: usecase.DefaultPageSize}
	}

	limit := input.Limit
	switch {
	case limit <= 0:
		limit = usecase.DefaultPageSize
	case limit > usecase.MaxPageSize:
		limit = usecase.MaxPageSize
	}

	offset := max(input.Offset, 0)

	return repository.JobFilter{Limit: limit, Offset: offset}
}

// normalizeDate keeps only the calendar date, in UTC.
func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}

	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
