package application

import (
	"io"
	"time"
)

// Attachment is an optional recommendation letter sent with an application.
type Attachment struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type ApplyRequest struct {
	JobID  int64
	Letter *Attachment
}

type ApplicationResponse struct {
	ID                   string    `json:"id"`
	EmployeeID           string    `json:"employee_id"`
	JobID                int64     `json:"job_id"`
	AppliedAt            time.Time `json:"applied_at"`
	HasLetter            bool      `json:"has_recommendation_letter"`
	RecommendationLetter string    `json:"recommendation_letter_url,omitempty"`
	EmployeeNumber       string    `json:"employee_number,omitempty"`
	EmployeeName         string    `json:"employee_name,omitempty"`
	Department           *string   `json:"department,omitempty"`
	JobTitle             string    `json:"job_title,omitempty"`
	VacancyNumber        string    `json:"vacancy_number,omitempty"`
}

// ApplyResponse reports the outcome of an apply call. Duplicate is set when
// the employee had already applied; Application then describes the earlier row.
type ApplyResponse struct {
	Duplicate   bool                `json:"duplicate"`
	Message     string              `json:"message"`
	Application ApplicationResponse `json:"application"`
}

// Letter is an opened recommendation letter ready to stream.
type Letter struct {
	Filename string
	Content  io.ReadCloser
}

func ToResponse(a Application, letterURL string) ApplicationResponse {
	return ApplicationResponse{
		ID:                   a.ID,
		EmployeeID:           a.EmployeeID,
		JobID:                a.JobID,
		AppliedAt:            a.AppliedAt,
		HasLetter:            a.RecommendationLetter != nil,
		RecommendationLetter: letterURL,
	}
}

func DetailToResponse(d Detail, letterURL string) ApplicationResponse {
	resp := ToResponse(d.Application, letterURL)
	resp.EmployeeNumber = d.EmployeeNumber
	resp.EmployeeName = d.EmployeeName
	resp.Department = d.Department
	resp.JobTitle = d.JobTitle
	resp.VacancyNumber = d.VacancyNumber
	return resp
}
