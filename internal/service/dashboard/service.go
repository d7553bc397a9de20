package dashboard

import (
	"context"
	"time"

	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/dashboard"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

const recentJobsLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clock clock.Clock
}

func NewDashboardService(repo dashboard.DashboardRepository, c clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		clock:               c,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines,
// one query each
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, identity auth.Identity) (dashboard.DashboardResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	now := s.clock.Now()
	today := clock.Date(now)

	var (
		employeeCounts dashboard.EmployeeCounts
		jobCounts      dashboard.JobCounts
		applications   int64
		promotions     int64
		recent         []job.Job
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employees (total, registered)
	g.Go(func() error {
		var err error
		employeeCounts, err = s.CountEmployees(gCtx)
		return err
	})

	// 2. Jobs (total, accepting applications)
	g.Go(func() error {
		var err error
		jobCounts, err = s.CountJobs(gCtx)
		return err
	})

	// 3. Applications
	g.Go(func() error {
		var err error
		applications, err = s.CountApplications(gCtx)
		return err
	})

	// 4. Promotions
	g.Go(func() error {
		var err error
		promotions, err = s.CountPromotions(gCtx)
		return err
	})

	// 5. Latest postings
	g.Go(func() error {
		var err error
		recent, err = s.RecentJobs(gCtx, recentJobsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	recentJobs := make([]job.JobResponse, 0, len(recent))
	for _, j := range recent {
		recentJobs = append(recentJobs, job.ToResponse(j, today))
	}

	return dashboard.DashboardResponse{
		EmployeeSummary: dashboard.EmployeeSummaryResponse{
			Total:        employeeCounts.Total,
			Registered:   employeeCounts.Registered,
			Unregistered: employeeCounts.Total - employeeCounts.Registered,
		},
		JobSummary: dashboard.JobSummaryResponse{
			Total:    jobCounts.Total,
			Active:   jobCounts.Active,
			Inactive: jobCounts.Total - jobCounts.Active,
		},
		TotalApplications: applications,
		TotalPromotions:   promotions,
		RecentJobs:        recentJobs,
		GeneratedAt:       now.Format(time.RFC3339),
	}, nil
}
