package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/awash-hr/job-portal/internal/domain/application"
	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/dashboard"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staff = auth.Identity{AccountID: "staff-account", EmployeeID: "HR-1", IsAuthenticated: true, IsStaff: true}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	c := &clock.Fixed{T: time.Date(2026, time.October, 14, 8, 0, 0, 0, time.UTC)}
	store := memory.NewStore(c)

	var registered employee.Employee
	for i, isRegistered := range []bool{true, false, false} {
		emp, err := store.Employees().Create(ctx, employee.Employee{
			EmployeeID:   fmt.Sprintf("E-%d", i),
			FullName:     "Test Employee",
			IsRegistered: isRegistered,
		})
		require.NoError(t, err)
		if isRegistered {
			registered = emp
		}
	}

	deadlines := []string{"2026-12-01", "2026-12-02", "2026-10-01", "2026-12-03", "2026-12-04", "2026-12-05", "2026-12-06"}
	var jobs []job.Job
	for i, d := range deadlines {
		deadline, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		j, err := store.Jobs().Create(ctx, job.Job{
			Title:      fmt.Sprintf("Job %d", i),
			PostedDate: c.Now().Add(time.Duration(i) * time.Minute),
			Deadline:   deadline,
			IsActive:   true,
		})
		require.NoError(t, err)
		jobs = append(jobs, j)
	}

	_, err := store.Applications().Create(ctx, application.Application{EmployeeID: registered.ID, JobID: jobs[0].ID, AppliedAt: c.Now()})
	require.NoError(t, err)

	svc := NewDashboardService(store.Dashboard(), c)
	resp, err := svc.GetDashboard(ctx, staff)
	require.NoError(t, err)

	assert.Equal(t, dashboard.EmployeeSummaryResponse{Total: 3, Registered: 1, Unregistered: 2}, resp.EmployeeSummary)
	assert.Equal(t, dashboard.JobSummaryResponse{Total: 7, Active: 6, Inactive: 1}, resp.JobSummary, "a passed deadline counts as inactive")
	assert.EqualValues(t, 1, resp.TotalApplications)
	assert.EqualValues(t, 0, resp.TotalPromotions)
	require.Len(t, resp.RecentJobs, 5)
	assert.Equal(t, "Job 6", resp.RecentJobs[0].Title)
	assert.Equal(t, "2026-10-14T08:00:00Z", resp.GeneratedAt)
}

func TestGetDashboardRequiresStaff(t *testing.T) {
	c := &clock.Fixed{T: time.Now()}
	svc := NewDashboardService(memory.NewStore(c).Dashboard(), c)

	_, err := svc.GetDashboard(context.Background(), auth.Identity{AccountID: "a", EmployeeID: "E-1", IsAuthenticated: true})
	assert.ErrorIs(t, err, auth.ErrStaffAccessRequired)
}

type failingRepository struct {
	dashboard.DashboardRepository
	err error
}

func (f failingRepository) CountPromotions(context.Context) (int64, error) {
	return 0, f.err
}

func TestGetDashboardPropagatesErrors(t *testing.T) {
	c := &clock.Fixed{T: time.Now()}
	boom := errors.New("boom")
	svc := NewDashboardService(failingRepository{DashboardRepository: memory.NewStore(c).Dashboard(), err: boom}, c)

	_, err := svc.GetDashboard(context.Background(), staff)
	assert.ErrorIs(t, err, boom)
}
