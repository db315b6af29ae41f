package service

import (
	"context"
	"strings"

	"github.com/conectVagas/ConectaVagas/internal/model"
	"github.com/conectVagas/ConectaVagas/internal/repository"
)

const (
	minTitleLength       = 3
	minCompanyLength     = 2
	minLocationLength    = 2
	minDescriptionLength = 10

	defaultPageSize = 20
	minPageSize     = 1
	maxPageSize     = 100
)

// JobRepository defines the interface for job posting storage
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, filter repository.JobFilter, limit, offset int) ([]*model.Job, error)
	Count(ctx context.Context, filter repository.JobFilter) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// JobService implements publishing, retrieval, filtered listing and
// owner-only deletion of job postings.
type JobService struct {
	jobRepo JobRepository
}

// JobServiceConfig holds configuration for the job service
type JobServiceConfig struct {
	JobRepo JobRepository
}

// NewJobService creates a new job service
func NewJobService(cfg JobServiceConfig) *JobService {
	return &JobService{jobRepo: cfg.JobRepo}
}

// CreateJobRequest represents a job publish request
type CreateJobRequest struct {
	Title       string
	Company     string
	Location    string
	Type        string
	Salary      string
	Description string
	Tags        string
	Urgent      bool
	NoExp       bool
	Remote      bool
	ApplyURL    string
	ApplyEmail  string
}

// Create validates and persists a new job posting owned by the given
// principal. CompanyID always comes from the verified principal, never
// from the request body.
func (s *JobService) Create(ctx context.Context, principal *model.TokenClaims, req CreateJobRequest) (*model.Job, error) {
	var fields []model.FieldError
	if len(strings.TrimSpace(req.Title)) < minTitleLength {
		fields = append(fields, model.FieldError{Field: "title", Message: "title must be at least 3 characters"})
	}
	if len(strings.TrimSpace(req.Company)) < minCompanyLength {
		fields = append(fields, model.FieldError{Field: "company", Message: "company must be at least 2 characters"})
	}
	if len(strings.TrimSpace(req.Location)) < minLocationLength {
		fields = append(fields, model.FieldError{Field: "location", Message: "location must be at least 2 characters"})
	}
	if len(strings.TrimSpace(req.Description)) < minDescriptionLength {
		fields = append(fields, model.FieldError{Field: "description", Message: "description must be at least 10 characters"})
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	job := &model.Job{
		Title:       strings.TrimSpace(req.Title),
		Company:     strings.TrimSpace(req.Company),
		Location:    strings.TrimSpace(req.Location),
		Type:        req.Type,
		Salary:      req.Salary,
		Description: req.Description,
		Tags:        req.Tags,
		Urgent:      req.Urgent,
		NoExp:       req.NoExp,
		Remote:      req.Remote,
		ApplyURL:    req.ApplyURL,
		ApplyEmail:  req.ApplyEmail,
		CompanyID:   principal.CompanyID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get retrieves a single job posting by ID
func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// ListJobsRequest represents a listing request. All filter predicates
// are ANDed; zero values disable them.
type ListJobsRequest struct {
	Query    string
	Tag      string
	Urgent   bool
	NoExp    bool
	Today    bool
	Page     int
	PageSize int
}

// JobPage is one page of listing results
type JobPage struct {
	Jobs     []*model.Job
	Total    int
	Page     int
	PageSize int
}

// List returns matching jobs newest first. PageSize is clamped to
// [1,100] with a default of 20; Page is floored at 1. Total counts all
// matching rows before pagination.
func (s *JobService) List(ctx context.Context, req ListJobsRequest) (*JobPage, error) {
	// Zero means the client sent no usable value and gets the default;
	// an explicit out-of-range value is clamped to [1,100].
	pageSize := req.PageSize
	switch {
	case pageSize == 0:
		pageSize = defaultPageSize
	case pageSize < minPageSize:
		pageSize = minPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	filter := repository.JobFilter{
		Query:  req.Query,
		Tag:    req.Tag,
		Urgent: req.Urgent,
		NoExp:  req.NoExp,
		Today:  req.Today,
	}

	total, err := s.jobRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.List(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	return &JobPage{
		Jobs:     jobs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete removes a job posting. Only the owning company may delete;
// anyone else gets ErrNotJobOwner and the job stays untouched.
func (s *JobService) Delete(ctx context.Context, principal *model.TokenClaims, id string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if job.CompanyID != principal.CompanyID {
		return nil, ErrNotJobOwner
	}

	existed, err := s.jobRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, ErrJobNotFound
	}
	return job, nil
}
