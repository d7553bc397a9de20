package memory

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/roster"
)

type rosterRepository struct {
	s *Store
}

func (s *Store) Roster() roster.RosterRepository {
	return &rosterRepository{s: s}
}

func (r *rosterRepository) GetByEmployeeID(_ context.Context, employeeID string) (roster.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.data.roster[employeeID]
	if !ok {
		return roster.Record{}, roster.ErrRecordNotFound
	}
	return rec, nil
}

func (r *rosterRepository) CreateIfAbsent(_ context.Context, record roster.Record) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.roster[record.EmployeeID]; ok {
		return false, nil
	}
	record.CreatedAt = r.s.clock.Now()
	r.s.data.roster[record.EmployeeID] = record
	return true, nil
}
