package memory

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/dashboard"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
)

type dashboardRepository struct {
	s *Store
}

func (s *Store) Dashboard() dashboard.DashboardRepository {
	return &dashboardRepository{s: s}
}

func (r *dashboardRepository) CountEmployees(_ context.Context) (dashboard.EmployeeCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var counts dashboard.EmployeeCounts
	for _, emp := range r.s.data.employees {
		counts.Total++
		if emp.IsRegistered {
			counts.Registered++
		}
	}
	return counts, nil
}

func (r *dashboardRepository) CountJobs(_ context.Context) (dashboard.JobCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	today := clock.Today(r.s.clock)
	var counts dashboard.JobCounts
	for _, j := range r.s.data.jobs {
		counts.Total++
		if j.AcceptsApplications(today) {
			counts.Active++
		}
	}
	return counts, nil
}

func (r *dashboardRepository) CountApplications(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.data.applications)), nil
}

func (r *dashboardRepository) CountPromotions(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.data.promotions)), nil
}

func (r *dashboardRepository) RecentJobs(ctx context.Context, limit int) ([]job.Job, error) {
	return r.s.Jobs().List(ctx, job.JobFilter{Limit: limit})
}
