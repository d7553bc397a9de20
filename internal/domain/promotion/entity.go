package promotion

import "time"

// Promotion is an append-only ledger entry. Recording one moves the
// employee's grade and restarts the eligibility cooldown.
type Promotion struct {
	ID         string
	EmployeeID string
	OldGrade   *string
	NewGrade   string
	PromotedAt time.Time
	Remarks    string
	CreatedAt  time.Time
}

// Entry is a promotion joined with the employee it belongs to.
type Entry struct {
	Promotion
	EmployeeNumber string
	EmployeeName   string
}
