package roster

import "errors"

var (
	ErrRecordNotFound    = errors.New("roster record not found")
	ErrMissingEmployeeID = errors.New("employee_id column is required")
	ErrMissingFullName   = errors.New("full_name column is required")
	ErrUnsupportedFormat = errors.New("unsupported roster file format: use .csv or .xlsx")
	ErrEmptyRosterFile   = errors.New("roster file has no header row")
	ErrInvalidRow        = errors.New("invalid roster row")
)
