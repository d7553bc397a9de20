package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	GetByAccountID(ctx context.Context, accountID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// Update persists every mutable column of emp, matched on emp.ID.
	Update(ctx context.Context, emp Employee) (Employee, error)
	// Upsert writes import data keyed by employee id without touching
	// registration or promotion state.
	Upsert(ctx context.Context, row ImportRow) (created bool, err error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Delete(ctx context.Context, id string) error
}
