package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied for this job")
	ErrNotEligible         = errors.New("you cannot apply within one year of your last promotion")
	ErrLetterNotFound      = errors.New("no recommendation letter attached to this application")
)
