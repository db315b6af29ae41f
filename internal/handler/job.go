package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/conectVagas/ConectaVagas/internal/broadcast"
	"github.com/conectVagas/ConectaVagas/internal/middleware"
	"github.com/conectVagas/ConectaVagas/internal/model"
	"github.com/conectVagas/ConectaVagas/internal/service"
)

// JobService defines the job operations the handler needs
type JobService interface {
	Create(ctx context.Context, principal *model.TokenClaims, req service.CreateJobRequest) (*model.Job, error)
	Get(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, req service.ListJobsRequest) (*service.JobPage, error)
	Delete(ctx context.Context, principal *model.TokenClaims, id string) (*model.Job, error)
}

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobService  JobService
	broadcaster *broadcast.Broadcaster
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService JobService, broadcaster *broadcast.Broadcaster) *JobHandler {
	return &JobHandler{
		jobService:  jobService,
		broadcaster: broadcaster,
	}
}

// CreateJobRequest represents the publish endpoint request body
type CreateJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Urgent      bool   `json:"urgent"`
	NoExp       bool   `json:"no_exp"`
	Remote      bool   `json:"remote"`
	ApplyURL    string `json:"apply_url"`
	ApplyEmail  string `json:"apply_email"`
}

// ListJobsResponse is one page of listing results
type ListJobsResponse struct {
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Jobs     []*model.Job `json:"jobs"`
}

// List handles GET /api/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	result, err := h.jobService.List(r.Context(), service.ListJobsRequest{
		Query:    q.Get("q"),
		Tag:      q.Get("tag"),
		Urgent:   q.Get("urgent") == "1",
		NoExp:    q.Get("noexp") == "1",
		Today:    q.Get("today") == "1",
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	jobs := result.Jobs
	if jobs == nil {
		jobs = []*model.Job{}
	}

	WriteJSON(w, http.StatusOK, ListJobsResponse{
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
		Jobs:     jobs,
	})
}

// Get handles GET /api/jobs/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleJobError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal := h.principal(r)
	if principal == nil {
		WriteError(w, model.NewUnauthorizedError("Token ausente"))
		return
	}

	var req CreateJobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("corpo da requisição inválido"))
		return
	}

	job, err := h.jobService.Create(r.Context(), principal, service.CreateJobRequest{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Type:        req.Type,
		Salary:      req.Salary,
		Description: req.Description,
		Tags:        req.Tags,
		Urgent:      req.Urgent,
		NoExp:       req.NoExp,
		Remote:      req.Remote,
		ApplyURL:    req.ApplyURL,
		ApplyEmail:  req.ApplyEmail,
	})
	if err != nil {
		h.handleJobError(w, err)
		return
	}

	// Notify after commit so subscribers never see a job that failed
	// to persist
	h.broadcaster.Broadcast(broadcast.NewJob(job))

	WriteJSON(w, http.StatusCreated, job)
}

// Delete handles DELETE /api/jobs/{id}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal := h.principal(r)
	if principal == nil {
		WriteError(w, model.NewUnauthorizedError("Token ausente"))
		return
	}

	id := r.PathValue("id")
	if _, err := h.jobService.Delete(r.Context(), principal, id); err != nil {
		h.handleJobError(w, err)
		return
	}

	h.broadcaster.Broadcast(broadcast.DeleteJob(id))

	WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}

func (h *JobHandler) principal(r *http.Request) *model.TokenClaims {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		return nil
	}
	return &model.TokenClaims{
		CompanyID: claims.CompanyID,
		Email:     claims.Email,
		Name:      claims.Name,
	}
}

func (h *JobHandler) handleJobError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		WriteError(w, model.NewNotFoundError("Vaga não encontrada"))
	case errors.Is(err, service.ErrNotJobOwner):
		WriteError(w, model.NewForbiddenError("Sem permissão"))
	default:
		writeServiceError(w, err)
	}
}
