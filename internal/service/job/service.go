package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/pkg/database"
)

type JobServiceImpl struct {
	tx database.Transactor
	job.JobRepository
	clock clock.Clock
}

func NewJobService(tx database.Transactor, jobRepository job.JobRepository, c clock.Clock) job.JobService {
	return &JobServiceImpl{
		tx:            tx,
		JobRepository: jobRepository,
		clock:         c,
	}
}

// CreateJob implements job.JobService. The row is inserted first so the
// database assigns the id, then the vacancy number derived from it is
// written in the same transaction.
func (s *JobServiceImpl) CreateJob(ctx context.Context, identity auth.Identity, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return job.JobResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	now := s.clock.Now()
	today := clock.Date(now)

	newJob := job.Job{PostedDate: now, IsActive: true}
	req.Apply(&newJob)
	newJob.EnforceDeadline(today)

	var created job.Job
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		inserted, err := s.JobRepository.Create(txCtx, newJob)
		if err != nil {
			return err
		}

		vacancyNumber := job.VacancyNumber(now.Year(), inserted.ID)
		if err := s.JobRepository.FinalizeVacancyNumber(txCtx, inserted.ID, vacancyNumber); err != nil {
			return fmt.Errorf("failed to assign vacancy number: %w", err)
		}

		created, err = s.JobRepository.GetByID(txCtx, inserted.ID)
		return err
	})
	if err != nil {
		return job.JobResponse{}, err
	}

	slog.Info("Job posted", "job_id", created.ID, "vacancy_number", created.VacancyNumber, "posted_by", identity.AccountID)
	return job.ToResponse(created, today), nil
}

// ListJobs implements job.JobService.
func (s *JobServiceImpl) ListJobs(ctx context.Context, identity auth.Identity, filter job.JobFilter) ([]job.JobResponse, error) {
	if err := identity.RequireAuthenticated(); err != nil {
		return nil, err
	}

	jobs, err := s.JobRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	today := clock.Today(s.clock)
	resp := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, job.ToResponse(j, today))
	}
	return resp, nil
}

// GetJob implements job.JobService.
func (s *JobServiceImpl) GetJob(ctx context.Context, identity auth.Identity, id int64) (job.JobResponse, error) {
	if err := identity.RequireAuthenticated(); err != nil {
		return job.JobResponse{}, err
	}

	j, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	return job.ToResponse(j, clock.Today(s.clock)), nil
}

// UpdateJob implements job.JobService.
func (s *JobServiceImpl) UpdateJob(ctx context.Context, identity auth.Identity, id int64, req job.UpdateJobRequest) (job.JobResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return job.JobResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	j, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}

	req.Apply(&j)
	return s.save(ctx, j)
}

// DeactivateJob implements job.JobService.
func (s *JobServiceImpl) DeactivateJob(ctx context.Context, identity auth.Identity, id int64) (job.JobResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return job.JobResponse{}, err
	}

	j, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}

	j.IsActive = false
	return s.save(ctx, j)
}

// save enforces the deadline rule before every write.
func (s *JobServiceImpl) save(ctx context.Context, j job.Job) (job.JobResponse, error) {
	today := clock.Today(s.clock)
	j.EnforceDeadline(today)

	updated, err := s.JobRepository.Update(ctx, j)
	if err != nil {
		return job.JobResponse{}, err
	}
	return job.ToResponse(updated, today), nil
}

// DeleteJob implements job.JobService.
func (s *JobServiceImpl) DeleteJob(ctx context.Context, identity auth.Identity, id int64) error {
	if err := identity.RequireStaff(); err != nil {
		return err
	}
	if err := s.JobRepository.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Job deleted", "job_id", id, "deleted_by", identity.AccountID)
	return nil
}
