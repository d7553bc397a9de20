package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/awash-hr/job-portal/internal/domain/application"
	"github.com/awash-hr/job-portal/internal/handler/http/middleware"
	"github.com/awash-hr/job-portal/internal/handler/http/response"
	"github.com/awash-hr/job-portal/internal/service/file"
	"github.com/go-chi/chi/v5"
)

const letterFormField = "recommendation_letter"

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListMyApplications(w http.ResponseWriter, r *http.Request)
	ListApplicationsForJob(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	DownloadRecommendationLetter(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	applicationService application.ApplicationService
	maxUploadSize      int64
}

func NewApplicationHandler(applicationService application.ApplicationService, maxUploadSize int64) ApplicationHandler {
	return &applicationHandlerImpl{
		applicationService: applicationService,
		maxUploadSize:      maxUploadSize,
	}
}

// Apply implements ApplicationHandler. The letter is an optional multipart
// file field; a JSON or empty body applies without one.
func (h *applicationHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	req := application.ApplyRequest{JobID: jobID}

	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "multipart/form-data" {
		// Headroom for the multipart envelope around the file
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+1<<20)
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				response.HandleError(w, file.ErrFileTooLarge)
				return
			}
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		letter, header, err := r.FormFile(letterFormField)
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			slog.Error("Failed to get file from form", "error", err)
			response.BadRequest(w, "Invalid file upload", nil)
			return
		default:
			defer letter.Close()
			req.Letter = &application.Attachment{
				Filename: header.Filename,
				Size:     header.Size,
				Content:  letter,
			}
		}
	}

	resp, err := h.applicationService.Apply(r.Context(), middleware.IdentityFrom(r.Context()), req)
	if err != nil {
		slog.Error("Apply service error", "error", err, "job_id", jobID)
		response.HandleError(w, err)
		return
	}

	if resp.Duplicate {
		response.SuccessWithMessage(w, resp.Message, resp)
		return
	}
	response.Created(w, resp.Message, resp)
}

// ListMyApplications implements ApplicationHandler.
func (h *applicationHandlerImpl) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	resp, err := h.applicationService.ListMyApplications(r.Context(), middleware.IdentityFrom(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListApplicationsForJob implements ApplicationHandler.
func (h *applicationHandlerImpl) ListApplicationsForJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListApplicationsForJob(r.Context(), middleware.IdentityFrom(r.Context()), jobID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListApplications implements ApplicationHandler.
func (h *applicationHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	resp, err := h.applicationService.ListApplications(r.Context(), middleware.IdentityFrom(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// DownloadRecommendationLetter implements ApplicationHandler.
func (h *applicationHandlerImpl) DownloadRecommendationLetter(w http.ResponseWriter, r *http.Request) {
	applicationID := chi.URLParam(r, "applicationID")

	letter, err := h.applicationService.OpenRecommendationLetter(r.Context(), middleware.IdentityFrom(r.Context()), applicationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer letter.Content.Close()

	contentType := mime.TypeByExtension(filepath.Ext(letter.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", letter.Filename))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, letter.Content); err != nil {
		slog.Error("Failed to stream recommendation letter", "error", err, "application_id", applicationID)
	}
}
