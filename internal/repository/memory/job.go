package memory

import (
	"context"
	"sort"

	"github.com/awash-hr/job-portal/internal/domain/job"
)

type jobRepository struct {
	s *Store
}

func (s *Store) Jobs() job.JobRepository {
	return &jobRepository{s: s}
}

func (r *jobRepository) Create(_ context.Context, j job.Job) (job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.data.nextJobID++
	j.ID = r.s.data.nextJobID
	j.VacancyNumber = ""
	j.UpdatedAt = r.s.clock.Now()
	r.s.data.jobs[j.ID] = j
	return j, nil
}

func (r *jobRepository) FinalizeVacancyNumber(_ context.Context, id int64, vacancyNumber string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	j, ok := r.s.data.jobs[id]
	if !ok {
		return job.ErrJobNotFound
	}
	if j.VacancyNumber != "" {
		return job.ErrVacancyNumberFinalized
	}
	for _, other := range r.s.data.jobs {
		if other.VacancyNumber == vacancyNumber {
			return job.ErrVacancyNumberExists
		}
	}
	j.VacancyNumber = vacancyNumber
	r.s.data.jobs[id] = j
	return nil
}

func (r *jobRepository) GetByID(_ context.Context, id int64) (job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	j, ok := r.s.data.jobs[id]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	return j, nil
}

func (r *jobRepository) List(_ context.Context, filter job.JobFilter) ([]job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	jobs := []job.Job{}
	for _, j := range r.s.data.jobs {
		if filter.Active != nil && j.IsActive != *filter.Active {
			continue
		}
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(a, b int) bool {
		if !jobs[a].PostedDate.Equal(jobs[b].PostedDate) {
			return jobs[a].PostedDate.After(jobs[b].PostedDate)
		}
		return jobs[a].ID > jobs[b].ID
	})
	if filter.Limit > 0 && len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}
	return jobs, nil
}

// Update never touches the vacancy number or posted date.
func (r *jobRepository) Update(_ context.Context, j job.Job) (job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.data.jobs[j.ID]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	j.VacancyNumber = current.VacancyNumber
	j.PostedDate = current.PostedDate
	j.UpdatedAt = r.s.clock.Now()
	r.s.data.jobs[j.ID] = j
	return j, nil
}

func (r *jobRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.jobs[id]; !ok {
		return job.ErrJobNotFound
	}
	delete(r.s.data.jobs, id)
	for key, app := range r.s.data.applications {
		if app.JobID == id {
			delete(r.s.data.applications, key)
		}
	}
	return nil
}
