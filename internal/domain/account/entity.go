package account

import (
	"strings"
	"time"
)

// Account is the login identity linked to an employee. Username always equals
// the employee id.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	IsStaff      bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SplitFullName splits "Abebe Kebede Tola" into ("Abebe", "Kebede Tola").
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
