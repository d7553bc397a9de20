package application

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/auth"
)

type ApplicationService interface {
	// Apply records interest in a job for the calling employee. A repeat
	// apply is not an error: the response carries Duplicate=true.
	Apply(ctx context.Context, identity auth.Identity, req ApplyRequest) (ApplyResponse, error)

	ListMyApplications(ctx context.Context, identity auth.Identity) ([]ApplicationResponse, error)
	ListApplicationsForJob(ctx context.Context, identity auth.Identity, jobID int64) ([]ApplicationResponse, error)
	ListApplications(ctx context.Context, identity auth.Identity) ([]ApplicationResponse, error)

	// OpenRecommendationLetter is allowed for staff and the applicant
	OpenRecommendationLetter(ctx context.Context, identity auth.Identity, applicationID string) (Letter, error)
}
