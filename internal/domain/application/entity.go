package application

import "time"

// Application is an employee's expression of interest in a job. At most one
// exists per (employee, job) pair.
type Application struct {
	ID                   string
	EmployeeID           string
	JobID                int64
	AppliedAt            time.Time
	RecommendationLetter *string
}

// Detail is an application joined with the applicant and posting for listings.
type Detail struct {
	Application
	EmployeeNumber string
	EmployeeName   string
	Department     *string
	JobTitle       string
	VacancyNumber  string
}
