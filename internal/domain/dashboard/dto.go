package dashboard

import "github.com/awash-hr/job-portal/internal/domain/job"

// DashboardResponse is the HR landing page payload
type DashboardResponse struct {
	EmployeeSummary   EmployeeSummaryResponse `json:"employee_summary"`
	JobSummary        JobSummaryResponse      `json:"job_summary"`
	TotalApplications int64                   `json:"total_applications"`
	TotalPromotions   int64                   `json:"total_promotions"`
	RecentJobs        []job.JobResponse       `json:"recent_jobs"`
	GeneratedAt       string                  `json:"generated_at"`
}

type EmployeeSummaryResponse struct {
	Total        int64 `json:"total"`
	Registered   int64 `json:"registered"`
	Unregistered int64 `json:"unregistered"`
}

type JobSummaryResponse struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}
