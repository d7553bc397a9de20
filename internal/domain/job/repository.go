package job

import "context"

type JobRepository interface {
	// Create inserts newJob without a vacancy number and returns the row
	// with its generated id.
	Create(ctx context.Context, newJob Job) (Job, error)
	// FinalizeVacancyNumber writes the derived number once; it fails with
	// ErrVacancyNumberFinalized when a number is already set.
	FinalizeVacancyNumber(ctx context.Context, id int64, vacancyNumber string) error
	GetByID(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context, filter JobFilter) ([]Job, error)
	Update(ctx context.Context, j Job) (Job, error)
	Delete(ctx context.Context, id int64) error
}
