package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/awash-hr/job-portal/internal/domain/application"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

const applicationColumns = `id, employee_id, job_id, applied_at, recommendation_letter`

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(&a.ID, &a.EmployeeID, &a.JobID, &a.AppliedAt, &a.RecommendationLetter)
	return a, err
}

// Create implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, newApplication application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applications (employee_id, job_id, applied_at, recommendation_letter)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + applicationColumns

	created, err := scanApplication(q.QueryRow(ctx, query,
		newApplication.EmployeeID, newApplication.JobID, newApplication.AppliedAt, newApplication.RecommendationLetter,
	))
	if err != nil {
		if isUniqueViolation(err, "uq_applications_employee_job") {
			return application.Application{}, application.ErrAlreadyApplied
		}
		return application.Application{}, fmt.Errorf("failed to create application: %w", err)
	}
	return created, nil
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanApplication(q.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return found, nil
}

// GetByEmployeeAndJob implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByEmployeeAndJob(ctx context.Context, employeeID string, jobID int64) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE employee_id = $1 AND job_id = $2`

	found, err := scanApplication(q.QueryRow(ctx, query, employeeID, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return found, nil
}

const applicationDetailQuery = `
	SELECT a.id, a.employee_id, a.job_id, a.applied_at, a.recommendation_letter,
		e.employee_id, e.full_name, e.department, j.title, COALESCE(j.vacancy_number, '')
	FROM applications a
	JOIN employees e ON e.id = a.employee_id
	JOIN jobs j ON j.id = a.job_id
`

func (r *applicationRepositoryImpl) listDetails(ctx context.Context, where string, args ...any) ([]application.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := applicationDetailQuery + where + ` ORDER BY a.applied_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	details := []application.Detail{}
	for rows.Next() {
		var d application.Detail
		err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.JobID, &d.AppliedAt, &d.RecommendationLetter,
			&d.EmployeeNumber, &d.EmployeeName, &d.Department, &d.JobTitle, &d.VacancyNumber,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// ListByEmployee implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]application.Detail, error) {
	return r.listDetails(ctx, `WHERE a.employee_id = $1`, employeeID)
}

// ListByJob implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) ListByJob(ctx context.Context, jobID int64) ([]application.Detail, error) {
	return r.listDetails(ctx, `WHERE a.job_id = $1`, jobID)
}

// ListAll implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) ListAll(ctx context.Context) ([]application.Detail, error) {
	return r.listDetails(ctx, "")
}
