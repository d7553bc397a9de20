package roster

import "context"

type RosterRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Record, error)
	// CreateIfAbsent inserts the record unless the employee id exists;
	// created reports whether a row was written.
	CreateIfAbsent(ctx context.Context, record Record) (created bool, err error)
}
