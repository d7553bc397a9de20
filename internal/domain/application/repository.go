package application

import "context"

type ApplicationRepository interface {
	// Create inserts newApplication; a second row for the same employee and
	// job fails with ErrAlreadyApplied.
	Create(ctx context.Context, newApplication Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	GetByEmployeeAndJob(ctx context.Context, employeeID string, jobID int64) (Application, error)
	// Listings are ordered by applied_at descending
	ListByEmployee(ctx context.Context, employeeID string) ([]Detail, error)
	ListByJob(ctx context.Context, jobID int64) ([]Detail, error)
	ListAll(ctx context.Context) ([]Detail, error)
}
