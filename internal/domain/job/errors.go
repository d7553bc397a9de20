package job

import "errors"

var (
	ErrJobNotFound               = errors.New("job not found")
	ErrVacancyNumberExists       = errors.New("vacancy number already exists")
	ErrVacancyNumberFinalized    = errors.New("vacancy number is already assigned")
	ErrJobNotAcceptingApplicants = errors.New("job is no longer accepting applications")
)
