package job

import (
	"fmt"
	"time"

	"github.com/awash-hr/job-portal/internal/pkg/clock"
)

type VacancyType string

const (
	VacancyTypeInternal VacancyType = "internal"
	VacancyTypeExternal VacancyType = "external"
)

func (v VacancyType) IsValid() bool {
	return v == VacancyTypeInternal || v == VacancyTypeExternal
}

type Job struct {
	ID             int64
	Title          string
	VacancyNumber  string
	PostedDate     time.Time
	Deadline       time.Time
	IsActive       bool
	Description    string
	Qualification  string
	Experience     string
	EmploymentType string
	JobCategory    string
	DutyStation    string
	JobGrade       string
	VacancyType    VacancyType
	UpdatedAt      time.Time
}

// VacancyNumber formats the human-facing posting number, e.g. VAC-2026-000042.
func VacancyNumber(year int, id int64) string {
	return fmt.Sprintf("VAC-%d-%06d", year, id)
}

// EnforceDeadline deactivates j when its deadline is before today. It runs on
// every save and overrides whatever active flag the caller supplied.
func (j *Job) EnforceDeadline(today time.Time) {
	if clock.Date(j.Deadline).Before(clock.Date(today)) {
		j.IsActive = false
	}
}

// AcceptsApplications reports whether employees may still apply.
func (j Job) AcceptsApplications(today time.Time) bool {
	return j.IsActive && !clock.Date(j.Deadline).Before(clock.Date(today))
}
