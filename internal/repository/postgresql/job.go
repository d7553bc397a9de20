package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `id, title, COALESCE(vacancy_number, ''), posted_date, deadline, is_active,
	description, qualification, experience, employment_type, job_category,
	duty_station, job_grade, vacancy_type, updated_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.VacancyNumber, &j.PostedDate, &j.Deadline, &j.IsActive,
		&j.Description, &j.Qualification, &j.Experience, &j.EmploymentType, &j.JobCategory,
		&j.DutyStation, &j.JobGrade, &j.VacancyType, &j.UpdatedAt,
	)
	return j, err
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, newJob job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (
			title, posted_date, deadline, is_active, description, qualification, experience,
			employment_type, job_category, duty_station, job_grade, vacancy_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + jobColumns

	created, err := scanJob(q.QueryRow(ctx, query,
		newJob.Title, newJob.PostedDate, newJob.Deadline, newJob.IsActive, newJob.Description,
		newJob.Qualification, newJob.Experience, newJob.EmploymentType, newJob.JobCategory,
		newJob.DutyStation, newJob.JobGrade, newJob.VacancyType,
	))
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// FinalizeVacancyNumber implements job.JobRepository.
func (r *jobRepositoryImpl) FinalizeVacancyNumber(ctx context.Context, id int64, vacancyNumber string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET vacancy_number = $1, updated_at = NOW()
		WHERE id = $2 AND vacancy_number IS NULL
	`

	tag, err := q.Exec(ctx, query, vacancyNumber, id)
	if err != nil {
		if isUniqueViolation(err, "") {
			return job.ErrVacancyNumberExists
		}
		return fmt.Errorf("failed to assign vacancy number to job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return job.ErrVacancyNumberFinalized
	}
	return nil
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id int64) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanJob(q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, err
	}
	return found, nil
}

// List implements job.JobRepository.
func (r *jobRepositoryImpl) List(ctx context.Context, filter job.JobFilter) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM jobs`
	args := []interface{}{}

	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += fmt.Sprintf(" WHERE is_active = $%d", len(args))
	}
	query += " ORDER BY posted_date DESC, id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update implements job.JobRepository. The vacancy number and posted date
// are never written here.
func (r *jobRepositoryImpl) Update(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET title = $1, deadline = $2, is_active = $3, description = $4, qualification = $5,
			experience = $6, employment_type = $7, job_category = $8, duty_station = $9,
			job_grade = $10, vacancy_type = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING ` + jobColumns

	updated, err := scanJob(q.QueryRow(ctx, query,
		j.Title, j.Deadline, j.IsActive, j.Description, j.Qualification,
		j.Experience, j.EmploymentType, j.JobCategory, j.DutyStation,
		j.JobGrade, j.VacancyType, j.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to update job %d: %w", j.ID, err)
	}
	return updated, nil
}

// Delete implements job.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}
	return nil
}
