package employee

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/auth"
)

// EmployeeService covers directory reads and registration reconciliation
// between the roster and the registered-account directory.
type EmployeeService interface {
	// LookupForRegistration checks the directory then the roster and returns
	// a registration pre-fill payload
	LookupForRegistration(ctx context.Context, employeeID string) (RegistrationLookupResponse, error)

	// Register creates the linked account and marks the employee registered
	Register(ctx context.Context, req RegisterRequest) (EmployeeResponse, error)

	// DeleteAccount removes an account and its employee row (staff only)
	DeleteAccount(ctx context.Context, identity auth.Identity, accountID string) error

	// ResolveRegistered returns the caller's employee row after re-deriving
	// the registration flag, failing unless the caller is registered
	ResolveRegistered(ctx context.Context, identity auth.Identity) (Employee, error)

	GetMyProfile(ctx context.Context, identity auth.Identity) (EmployeeResponse, error)
	UpdateMyProfile(ctx context.Context, identity auth.Identity, req UpdateProfileRequest) (EmployeeResponse, error)

	// Staff directory management
	ListEmployees(ctx context.Context, identity auth.Identity, filter EmployeeFilter) (ListEmployeeResponse, error)
	GetEmployee(ctx context.Context, identity auth.Identity, employeeID string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, identity auth.Identity, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
