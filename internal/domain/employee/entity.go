package employee

import (
	"time"

	"github.com/awash-hr/job-portal/internal/pkg/clock"
)

// EligibilityCooldownDays is how long after a promotion an employee may
// neither apply for jobs nor be promoted again.
const EligibilityCooldownDays = 365

// Employee is a directory entry for a person on the roster. It is created on
// first registration (or by the admin import) and linked to an account.
type Employee struct {
	ID                string
	EmployeeID        string
	AccountID         *string
	FullName          string
	Position          *string
	Department        *string
	Grade             *string
	Email             *string
	Phone             *string
	IsRegistered      bool
	LastPromotionDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EligibleFrom returns the first date the employee may apply again, or nil
// when no promotion is on record.
func (e Employee) EligibleFrom() *time.Time {
	if e.LastPromotionDate == nil {
		return nil
	}
	from := clock.Date(*e.LastPromotionDate).AddDate(0, 0, EligibilityCooldownDays)
	return &from
}

// CanApply is false iff today < lastPromotionDate + 365 days.
func CanApply(e Employee, today time.Time) bool {
	from := e.EligibleFrom()
	if from == nil {
		return true
	}
	return !clock.Date(today).Before(*from)
}

// ImportRow is one line of the admin employee import.
type ImportRow struct {
	EmployeeID string
	FullName   string
	Department *string
	Email      *string
	Phone      *string
}
