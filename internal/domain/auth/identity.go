package auth

// Identity is the caller as seen by the services. Handlers build it from the
// verified access token and pass it explicitly to every operation.
type Identity struct {
	AccountID       string
	EmployeeID      string
	IsAuthenticated bool
	IsStaff         bool
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = Identity{}

// RequireAuthenticated fails unless the caller is signed in.
func (i Identity) RequireAuthenticated() error {
	if !i.IsAuthenticated {
		return ErrAuthenticationRequired
	}
	return nil
}

// RequireStaff fails unless the caller is an authenticated HR staff member.
func (i Identity) RequireStaff() error {
	if err := i.RequireAuthenticated(); err != nil {
		return err
	}
	if !i.IsStaff {
		return ErrStaffAccessRequired
	}
	return nil
}
