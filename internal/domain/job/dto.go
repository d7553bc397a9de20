package job

import (
	"strings"
	"time"

	"github.com/awash-hr/job-portal/internal/pkg/validator"
)

// JobFields are the HR-editable attributes shared by create and update.
type JobFields struct {
	Title          string `json:"title"`
	Deadline       string `json:"deadline"`
	IsActive       *bool  `json:"is_active,omitempty"`
	Description    string `json:"description"`
	Qualification  string `json:"qualification"`
	Experience     string `json:"experience"`
	EmploymentType string `json:"employment_type"`
	JobCategory    string `json:"job_category"`
	DutyStation    string `json:"duty_station"`
	JobGrade       string `json:"job_grade"`
	VacancyType    string `json:"vacancy_type"`
	deadline       time.Time
}

func (f *JobFields) validate() error {
	var errs validator.ValidationErrors

	f.Title = strings.TrimSpace(f.Title)
	f.Deadline = strings.TrimSpace(f.Deadline)
	f.VacancyType = strings.ToLower(strings.TrimSpace(f.VacancyType))

	errs.Required("title", f.Title)
	errs.MaxLen("title", f.Title, 200)

	// Deadline must parse before any comparison against today
	if validator.IsEmpty(f.Deadline) {
		errs.Add("deadline", "deadline is required")
	} else if d, ok := validator.IsValidDate(f.Deadline); !ok {
		errs.Add("deadline", "deadline must be a valid date in YYYY-MM-DD format")
	} else {
		f.deadline = d
	}

	errs.MaxLen("experience", f.Experience, 200)
	errs.MaxLen("employment_type", f.EmploymentType, 100)
	errs.MaxLen("job_category", f.JobCategory, 100)
	errs.MaxLen("duty_station", f.DutyStation, 100)
	errs.MaxLen("job_grade", f.JobGrade, 50)

	if f.VacancyType == "" {
		f.VacancyType = string(VacancyTypeExternal)
	} else if !VacancyType(f.VacancyType).IsValid() {
		errs.Add("vacancy_type", "vacancy_type must be one of: internal, external")
	}

	return errs.Err()
}

// DeadlineDate is the parsed deadline; only meaningful after Validate.
func (f *JobFields) DeadlineDate() time.Time {
	return f.deadline
}

// Apply copies the fields onto j. A nil IsActive keeps j's current flag.
func (f *JobFields) Apply(j *Job) {
	j.Title = f.Title
	j.Deadline = f.deadline
	if f.IsActive != nil {
		j.IsActive = *f.IsActive
	}
	j.Description = f.Description
	j.Qualification = f.Qualification
	j.Experience = f.Experience
	j.EmploymentType = f.EmploymentType
	j.JobCategory = f.JobCategory
	j.DutyStation = f.DutyStation
	j.JobGrade = f.JobGrade
	j.VacancyType = VacancyType(f.VacancyType)
}

type CreateJobRequest struct {
	JobFields
}

func (r *CreateJobRequest) Validate() error {
	return r.JobFields.validate()
}

type UpdateJobRequest struct {
	JobFields
}

func (r *UpdateJobRequest) Validate() error {
	return r.JobFields.validate()
}

type JobFilter struct {
	Active *bool
	Limit  int
}

type JobResponse struct {
	ID                    int64  `json:"id"`
	Title                 string `json:"title"`
	VacancyNumber         string `json:"vacancy_number"`
	PostedDate            string `json:"posted_date"`
	Deadline              string `json:"deadline"`
	IsActive              bool   `json:"is_active"`
	AcceptingApplications bool   `json:"accepting_applications"`
	Description           string `json:"description"`
	Qualification         string `json:"qualification"`
	Experience            string `json:"experience"`
	EmploymentType        string `json:"employment_type"`
	JobCategory           string `json:"job_category"`
	DutyStation           string `json:"duty_station"`
	JobGrade              string `json:"job_grade"`
	VacancyType           string `json:"vacancy_type"`
}

func ToResponse(j Job, today time.Time) JobResponse {
	return JobResponse{
		ID:                    j.ID,
		Title:                 j.Title,
		VacancyNumber:         j.VacancyNumber,
		PostedDate:            j.PostedDate.Format(time.RFC3339),
		Deadline:              j.Deadline.Format(validator.DateLayout),
		IsActive:              j.IsActive,
		AcceptingApplications: j.AcceptsApplications(today),
		Description:           j.Description,
		Qualification:         j.Qualification,
		Experience:            j.Experience,
		EmploymentType:        j.EmploymentType,
		JobCategory:           j.JobCategory,
		DutyStation:           j.DutyStation,
		JobGrade:              j.JobGrade,
		VacancyType:           string(j.VacancyType),
	}
}
