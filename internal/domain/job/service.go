package job

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/auth"
)

type JobService interface {
	// CreateJob inserts the posting and assigns its vacancy number (staff only)
	CreateJob(ctx context.Context, identity auth.Identity, req CreateJobRequest) (JobResponse, error)
	ListJobs(ctx context.Context, identity auth.Identity, filter JobFilter) ([]JobResponse, error)
	GetJob(ctx context.Context, identity auth.Identity, id int64) (JobResponse, error)
	UpdateJob(ctx context.Context, identity auth.Identity, id int64, req UpdateJobRequest) (JobResponse, error)
	DeactivateJob(ctx context.Context, identity auth.Identity, id int64) (JobResponse, error)
	// DeleteJob hard deletes the posting together with its applications
	DeleteJob(ctx context.Context, identity auth.Identity, id int64) error
}
