package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/handler/http/middleware"
	"github.com/awash-hr/job-portal/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type JobHandler interface {
	ListJobs(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	CreateJob(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeactivateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &jobHandlerImpl{jobService: jobService}
}

// jobIDParam parses the {jobID} path segment; unparsable ids are not found.
func jobIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil || id <= 0 {
		response.HandleError(w, job.ErrJobNotFound)
		return 0, false
	}
	return id, true
}

// ListJobs implements JobHandler.
func (h *jobHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	var filter job.JobFilter
	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			response.ValidationError(w, map[string]string{"active": "active must be true or false"})
			return
		}
		filter.Active = &active
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	jobs, err := h.jobService.ListJobs(r.Context(), middleware.IdentityFrom(r.Context()), filter)
	if err != nil {
		slog.Error("ListJobs service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, jobs)
}

// GetJob implements JobHandler.
func (h *jobHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.jobService.GetJob(r.Context(), middleware.IdentityFrom(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// CreateJob implements JobHandler.
func (h *jobHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateJob decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.jobService.CreateJob(r.Context(), middleware.IdentityFrom(r.Context()), req)
	if err != nil {
		slog.Error("CreateJob service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job created successfully", resp)
}

// UpdateJob implements JobHandler.
func (h *jobHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	var req job.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.jobService.UpdateJob(r.Context(), middleware.IdentityFrom(r.Context()), id, req)
	if err != nil {
		slog.Error("UpdateJob service error", "error", err, "job_id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job updated successfully", resp)
}

// DeactivateJob implements JobHandler.
func (h *jobHandlerImpl) DeactivateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.jobService.DeactivateJob(r.Context(), middleware.IdentityFrom(r.Context()), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job deactivated", resp)
}

// DeleteJob implements JobHandler.
func (h *jobHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(r.Context(), middleware.IdentityFrom(r.Context()), id); err != nil {
		slog.Error("DeleteJob service error", "error", err, "job_id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}
