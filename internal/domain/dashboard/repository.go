package dashboard

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/job"
)

// EmployeeCounts combines directory counts in a single query
type EmployeeCounts struct {
	Total      int64
	Registered int64
}

// JobCounts combines posting counts in a single query
type JobCounts struct {
	Total  int64
	Active int64
}

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (EmployeeCounts, error)
	CountJobs(ctx context.Context) (JobCounts, error)
	CountApplications(ctx context.Context) (int64, error)
	CountPromotions(ctx context.Context) (int64, error)
	// RecentJobs returns the newest postings by posted_date
	RecentJobs(ctx context.Context, limit int) ([]job.Job, error)
}
