package account

import "errors"

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrUsernameExists   = errors.New("an account with this employee id already exists")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)
