package dashboard

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/auth"
)

type DashboardService interface {
	// GetDashboard returns combined dashboard data using goroutines
	GetDashboard(ctx context.Context, identity auth.Identity) (DashboardResponse, error)
}
