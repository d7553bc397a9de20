package memory

import (
	"context"
	"sort"

	"github.com/awash-hr/job-portal/internal/domain/application"
)

type applicationRepository struct {
	s *Store
}

func (s *Store) Applications() application.ApplicationRepository {
	return &applicationRepository{s: s}
}

func (r *applicationRepository) Create(_ context.Context, a application.Application) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.FailApplicationCreate; err != nil {
		r.s.FailApplicationCreate = nil
		return application.Application{}, err
	}
	for _, existing := range r.s.data.applications {
		if existing.EmployeeID == a.EmployeeID && existing.JobID == a.JobID {
			return application.Application{}, application.ErrAlreadyApplied
		}
	}
	a.ID = newID()
	r.s.data.applications[a.ID] = a
	return a, nil
}

func (r *applicationRepository) GetByID(_ context.Context, id string) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.data.applications[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return a, nil
}

func (r *applicationRepository) GetByEmployeeAndJob(_ context.Context, employeeID string, jobID int64) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.data.applications {
		if a.EmployeeID == employeeID && a.JobID == jobID {
			return a, nil
		}
	}
	return application.Application{}, application.ErrApplicationNotFound
}

func (r *applicationRepository) list(match func(application.Application) bool) []application.Detail {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	details := []application.Detail{}
	for _, a := range r.s.data.applications {
		if !match(a) {
			continue
		}
		d := application.Detail{Application: a}
		if emp, ok := r.s.data.employees[a.EmployeeID]; ok {
			d.EmployeeNumber = emp.EmployeeID
			d.EmployeeName = emp.FullName
			d.Department = emp.Department
		}
		if j, ok := r.s.data.jobs[a.JobID]; ok {
			d.JobTitle = j.Title
			d.VacancyNumber = j.VacancyNumber
		}
		details = append(details, d)
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].AppliedAt.After(details[j].AppliedAt)
	})
	return details
}

func (r *applicationRepository) ListByEmployee(_ context.Context, employeeID string) ([]application.Detail, error) {
	return r.list(func(a application.Application) bool { return a.EmployeeID == employeeID }), nil
}

func (r *applicationRepository) ListByJob(_ context.Context, jobID int64) ([]application.Detail, error) {
	return r.list(func(a application.Application) bool { return a.JobID == jobID }), nil
}

func (r *applicationRepository) ListAll(_ context.Context) ([]application.Detail, error) {
	return r.list(func(application.Application) bool { return true }), nil
}
