package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrAlreadyRegistered      = errors.New("this employee is already registered")
	ErrRegisteredEmployeeOnly = errors.New("a registered employee account is required")
	ErrEmailExists            = errors.New("email already used by another employee")
)
