package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/awash-hr/job-portal/internal/domain/application"
	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/awash-hr/job-portal/internal/pkg/email"
	"github.com/awash-hr/job-portal/internal/pkg/storage"
	"github.com/awash-hr/job-portal/internal/pkg/validator"
	"github.com/awash-hr/job-portal/internal/service/file"
)

const (
	msgApplied   = "Application submitted successfully"
	msgDuplicate = "You have already applied for this job"
)

type ApplicationServiceImpl struct {
	tx database.Transactor
	application.ApplicationRepository
	jobs      job.JobRepository
	employees employee.EmployeeService
	files     file.FileService
	mailer    email.Mailer
	clock     clock.Clock
}

func NewApplicationService(
	tx database.Transactor,
	applicationRepository application.ApplicationRepository,
	jobRepository job.JobRepository,
	employeeService employee.EmployeeService,
	fileService file.FileService,
	mailer email.Mailer,
	c clock.Clock,
) application.ApplicationService {
	return &ApplicationServiceImpl{
		tx:                    tx,
		ApplicationRepository: applicationRepository,
		jobs:                  jobRepository,
		employees:             employeeService,
		files:                 fileService,
		mailer:                mailer,
		clock:                 c,
	}
}

// letterURL is the API path that streams an application's letter.
func letterURL(a application.Application) string {
	if a.RecommendationLetter == nil {
		return ""
	}
	return "/api/v1/applications/" + a.ID + "/recommendation-letter"
}

func duplicateResponse(existing application.Application) application.ApplyResponse {
	return application.ApplyResponse{
		Duplicate:   true,
		Message:     msgDuplicate,
		Application: application.ToResponse(existing, letterURL(existing)),
	}
}

// Apply implements application.ApplicationService.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, identity auth.Identity, req application.ApplyRequest) (application.ApplyResponse, error) {
	emp, err := s.employees.ResolveRegistered(ctx, identity)
	if err != nil {
		return application.ApplyResponse{}, err
	}

	now := s.clock.Now()
	today := clock.Date(now)
	if !employee.CanApply(emp, today) {
		return application.ApplyResponse{}, application.ErrNotEligible
	}

	j, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return application.ApplyResponse{}, err
	}
	// An earlier application is reported even once the posting has closed
	existing, err := s.ApplicationRepository.GetByEmployeeAndJob(ctx, emp.ID, j.ID)
	if err == nil {
		return duplicateResponse(existing), nil
	}
	if !errors.Is(err, application.ErrApplicationNotFound) {
		return application.ApplyResponse{}, fmt.Errorf("failed to check existing application: %w", err)
	}

	if !j.AcceptsApplications(today) {
		return application.ApplyResponse{}, job.ErrJobNotAcceptingApplicants
	}

	var letterKey *string
	if req.Letter != nil {
		key, err := s.files.UploadRecommendationLetter(ctx, emp.EmployeeID, req.Letter.Content, req.Letter.Filename)
		if err != nil {
			return application.ApplyResponse{}, err
		}
		letterKey = &key
	}

	var created application.Application
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.ApplicationRepository.Create(txCtx, application.Application{
			EmployeeID:           emp.ID,
			JobID:                j.ID,
			AppliedAt:            now,
			RecommendationLetter: letterKey,
		})
		return err
	})
	if err != nil {
		s.discardLetter(ctx, letterKey)

		// Lost a race with a concurrent apply from the same employee
		if errors.Is(err, application.ErrAlreadyApplied) {
			existing, getErr := s.ApplicationRepository.GetByEmployeeAndJob(ctx, emp.ID, j.ID)
			if getErr != nil {
				return application.ApplyResponse{}, err
			}
			return duplicateResponse(existing), nil
		}
		return application.ApplyResponse{}, fmt.Errorf("failed to save application: %w", err)
	}

	slog.Info("Application submitted", "employee_id", emp.EmployeeID, "job_id", j.ID, "has_letter", letterKey != nil)
	s.notifyApplicant(emp, j, created)
	return application.ApplyResponse{
		Message:     msgApplied,
		Application: application.ToResponse(created, letterURL(created)),
	}, nil
}

// notifyApplicant mails a receipt when the employee has an email on file.
// The application is already stored, so delivery failures are only logged.
func (s *ApplicationServiceImpl) notifyApplicant(emp employee.Employee, j job.Job, a application.Application) {
	if s.mailer == nil || emp.Email == nil || *emp.Email == "" {
		return
	}
	err := s.mailer.SendApplicationReceived(*emp.Email, email.ApplicationReceived{
		EmployeeName:  emp.FullName,
		JobTitle:      j.Title,
		VacancyNumber: j.VacancyNumber,
		AppliedAt:     a.AppliedAt.Format(validator.DateLayout),
	})
	if err != nil {
		slog.Error("Failed to send application receipt", "employee_id", emp.EmployeeID, "job_id", j.ID, "error", err)
	}
}

func (s *ApplicationServiceImpl) discardLetter(ctx context.Context, key *string) {
	if key == nil {
		return
	}
	if err := s.files.DeleteFile(ctx, *key); err != nil {
		slog.Error("Failed to delete orphaned recommendation letter", "key", *key, "error", err)
	}
}

func toResponses(details []application.Detail) []application.ApplicationResponse {
	resp := make([]application.ApplicationResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, application.DetailToResponse(d, letterURL(d.Application)))
	}
	return resp
}

// ListMyApplications implements application.ApplicationService.
func (s *ApplicationServiceImpl) ListMyApplications(ctx context.Context, identity auth.Identity) ([]application.ApplicationResponse, error) {
	emp, err := s.employees.ResolveRegistered(ctx, identity)
	if err != nil {
		return nil, err
	}

	details, err := s.ApplicationRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return toResponses(details), nil
}

// ListApplicationsForJob implements application.ApplicationService.
func (s *ApplicationServiceImpl) ListApplicationsForJob(ctx context.Context, identity auth.Identity, jobID int64) ([]application.ApplicationResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return nil, err
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	details, err := s.ApplicationRepository.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return toResponses(details), nil
}

// ListApplications implements application.ApplicationService.
func (s *ApplicationServiceImpl) ListApplications(ctx context.Context, identity auth.Identity) ([]application.ApplicationResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return nil, err
	}

	details, err := s.ApplicationRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return toResponses(details), nil
}

// OpenRecommendationLetter implements application.ApplicationService.
func (s *ApplicationServiceImpl) OpenRecommendationLetter(ctx context.Context, identity auth.Identity, applicationID string) (application.Letter, error) {
	if err := identity.RequireAuthenticated(); err != nil {
		return application.Letter{}, err
	}
	if !validator.IsValidUUID(applicationID) {
		return application.Letter{}, application.ErrApplicationNotFound
	}

	app, err := s.ApplicationRepository.GetByID(ctx, applicationID)
	if err != nil {
		return application.Letter{}, err
	}

	if !identity.IsStaff {
		emp, err := s.employees.ResolveRegistered(ctx, identity)
		if err != nil {
			return application.Letter{}, err
		}
		if emp.ID != app.EmployeeID {
			return application.Letter{}, auth.ErrStaffAccessRequired
		}
	}

	if app.RecommendationLetter == nil {
		return application.Letter{}, application.ErrLetterNotFound
	}

	content, err := s.files.OpenFile(ctx, *app.RecommendationLetter)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return application.Letter{}, application.ErrLetterNotFound
		}
		return application.Letter{}, fmt.Errorf("failed to open recommendation letter: %w", err)
	}
	return application.Letter{Filename: path.Base(*app.RecommendationLetter), Content: content}, nil
}
