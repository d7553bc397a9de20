package roster

import "time"

// Record is one row of the authoritative employee roster. It is loaded by the
// batch importer and never mutated by the web tier.
type Record struct {
	EmployeeID string
	FullName   string
	Department *string
	Email      *string
	Phone      *string
	CreatedAt  time.Time
}
