package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"jobboard/internal/delivery/api/response"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateLayout = time.DateOnly

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

// JobHandler holds dependencies for job posting handlers.
type JobHandler struct {
	jobUC  usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler.
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		jobUC:  params.JobUC,
		logger: params.Logger,
	}
}

// CreateJobRequest represents the request body for publishing a posting.
// There is no owner field: the owner is always the caller.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=10000"`
	Company     string `json:"company" validate:"required,max=200"`
	LastDate    string `json:"lastDate" validate:"required"`
	Vacancies   *int   `json:"vacancies" validate:"omitempty,min=0"`
}

// UpdateJobRequest represents a partial update; absent fields are left unchanged.
// "vacancies": null clears the vacancy count.
type UpdateJobRequest struct {
	Title       *string     `json:"title" validate:"omitempty,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=10000"`
	Company     *string     `json:"company" validate:"omitempty,max=200"`
	LastDate    *string     `json:"lastDate"`
	Vacancies   nullableInt `json:"vacancies"`
}

// nullableInt tells an explicit null apart from an absent field.
type nullableInt struct {
	Present bool
	Value   *int
}

func (n *nullableInt) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil

		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.WithStack(err)
	}
	n.Value = &v

	return nil
}

// JobResponse is the public representation of a posting.
type JobResponse struct {
	ID          entity.JobID     `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Company     string           `json:"company"`
	LastDate    string           `json:"lastDate"`
	Vacancies   *int             `json:"vacancies,omitempty"`
	PostedBy    entity.AccountID `json:"postedBy"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// CreateJob handles publishing a new posting.
func (h *JobHandler) CreateJob(c echo.Context) error {
	caller, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req CreateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lastDate, err := parseDate(req.LastDate)
	if err != nil {
		return err
	}

	job, err := h.jobUC.CreateJob(c.Request().Context(), caller, &usecase.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		LastDate:    lastDate,
		Vacancies:   req.Vacancies,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toJobResponse(job))
}

// ListOwnJobs handles listing the caller's own postings.
func (h *JobHandler) ListOwnJobs(c echo.Context) error {
	caller, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	input, err := bindListInput(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobUC.ListOwnJobs(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponses(jobs))
}

// BrowseJobs handles listing postings of every account.
func (h *JobHandler) BrowseJobs(c echo.Context) error {
	input, err := bindListInput(c)
	if err != nil {
		return err
	}
	input.Company = c.QueryParam("company")

	jobs, err := h.jobUC.BrowseJobs(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponses(jobs))
}

// GetJob handles fetching one of the caller's postings.
func (h *JobHandler) GetJob(c echo.Context) error {
	caller, jobID, err := callerAndJobID(c)
	if err != nil {
		return err
	}

	job, err := h.jobUC.GetOwnJob(c.Request().Context(), caller, jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponse(job))
}

// UpdateJob handles a partial update of one of the caller's postings.
func (h *JobHandler) UpdateJob(c echo.Context) error {
	caller, jobID, err := callerAndJobID(c)
	if err != nil {
		return err
	}

	var req UpdateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		Vacancies:      req.Vacancies.Value,
		ClearVacancies: req.Vacancies.Present && req.Vacancies.Value == nil,
	}

	if req.LastDate != nil {
		lastDate, err := parseDate(*req.LastDate)
		if err != nil {
			return err
		}
		input.LastDate = &lastDate
	}

	job, err := h.jobUC.UpdateJob(c.Request().Context(), caller, jobID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponse(job))
}

// DeleteJob handles permanently removing one of the caller's postings.
func (h *JobHandler) DeleteJob(c echo.Context) error {
	caller, jobID, err := callerAndJobID(c)
	if err != nil {
		return err
	}

	if err := h.jobUC.DeleteJob(c.Request().Context(), caller, jobID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Job removed")
}

// callerAndJobID resolves the caller and the :id path parameter. An id that cannot
// name any posting is reported as not found.
func callerAndJobID(c echo.Context) (entity.AccountID, entity.JobID, error) {
	caller, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return entity.NilAccountID, entity.JobID{}, domainerrors.ErrUnauthenticated
	}

	jobID, err := entity.ParseJobID(c.Param("id"))
	if err != nil {
		return entity.NilAccountID, entity.JobID{}, domainerrors.ErrJobNotFound
	}

	return caller, jobID, nil
}

func bindListInput(c echo.Context) (*usecase.ListJobsInput, error) {
	input := &usecase.ListJobsInput{}

	err := echo.QueryParamsBinder(c).
		Int("limit", &input.Limit).
		Int("offset", &input.Offset).
		BindError()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}

	return input, nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("lastDate: expected YYYY-MM-DD")
}

func toJobResponse(job *entity.JobPosting) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Company:     job.Company,
		LastDate:    job.LastDate.Format(dateLayout),
		Vacancies:   job.Vacancies,
		PostedBy:    job.PostedBy,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func toJobResponses(jobs []*entity.JobPosting) []JobResponse {
	responses := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, toJobResponse(job))
	}

	return responses
}
