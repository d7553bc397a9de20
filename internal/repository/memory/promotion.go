package memory

import (
	"context"
	"sort"

	"github.com/awash-hr/job-portal/internal/domain/promotion"
)

type promotionRepository struct {
	s *Store
}

func (s *Store) Promotions() promotion.PromotionRepository {
	return &promotionRepository{s: s}
}

func (r *promotionRepository) Create(_ context.Context, p promotion.Promotion) (promotion.Promotion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = newID()
	p.CreatedAt = r.s.clock.Now()
	r.s.data.promotions[p.ID] = p
	return p, nil
}

func (r *promotionRepository) List(_ context.Context, employeeID string) ([]promotion.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := []promotion.Entry{}
	for _, p := range r.s.data.promotions {
		if employeeID != "" && p.EmployeeID != employeeID {
			continue
		}
		e := promotion.Entry{Promotion: p}
		if emp, ok := r.s.data.employees[p.EmployeeID]; ok {
			e.EmployeeNumber = emp.EmployeeID
			e.EmployeeName = emp.FullName
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].PromotedAt.Equal(entries[j].PromotedAt) {
			return entries[i].PromotedAt.After(entries[j].PromotedAt)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}
