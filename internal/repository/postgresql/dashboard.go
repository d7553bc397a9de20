package postgresql

import (
	"context"
	"fmt"

	"github.com/awash-hr/job-portal/internal/domain/dashboard"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db        *database.DB
	jobReader job.JobRepository
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db, jobReader: NewJobRepository(db)}
}

// CountEmployees returns total and registered counts in single query
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (dashboard.EmployeeCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_registered) AS registered
		FROM employees
	`

	var counts dashboard.EmployeeCounts
	if err := q.QueryRow(ctx, query).Scan(&counts.Total, &counts.Registered); err != nil {
		return dashboard.EmployeeCounts{}, fmt.Errorf("failed to count employees: %w", err)
	}
	return counts, nil
}

// CountJobs returns total and active posting counts in single query
func (r *dashboardRepositoryImpl) CountJobs(ctx context.Context) (dashboard.JobCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active AND deadline >= CURRENT_DATE) AS active
		FROM jobs
	`

	var counts dashboard.JobCounts
	if err := q.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		return dashboard.JobCounts{}, fmt.Errorf("failed to count jobs: %w", err)
	}
	return counts, nil
}

func (r *dashboardRepositoryImpl) CountApplications(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return total, nil
}

func (r *dashboardRepositoryImpl) CountPromotions(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM promotions`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count promotions: %w", err)
	}
	return total, nil
}

func (r *dashboardRepositoryImpl) RecentJobs(ctx context.Context, limit int) ([]job.Job, error) {
	return r.jobReader.List(ctx, job.JobFilter{Limit: limit})
}
