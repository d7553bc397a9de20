package employee

import (
	"strings"
	"time"

	"github.com/awash-hr/job-portal/internal/pkg/validator"
)

type LookupStatus string

const (
	LookupStatusAvailable  LookupStatus = "available"
	LookupStatusRegistered LookupStatus = "registered"
)

// RegistrationLookupResponse is the registration form pre-fill payload.
type RegistrationLookupResponse struct {
	EmployeeID   string       `json:"employee_id"`
	Status       LookupStatus `json:"status"`
	IsRegistered bool         `json:"is_registered"`
	FullName     string       `json:"full_name,omitempty"`
	Position     *string      `json:"position,omitempty"`
	Department   *string      `json:"department,omitempty"`
	Email        *string      `json:"email,omitempty"`
}

type RegisterRequest struct {
	EmployeeID      string `json:"employee_id"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Position        string `json:"position"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Position = strings.TrimSpace(r.Position)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)

	// Employee ID
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id may only contain letters, numbers, '/', '.', '_' and '-' (max 50 characters)")
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < 8 {
		errs.Add("password", "password must be at least 8 characters long")
	} else if len(r.Password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	}
	if validator.IsEmpty(r.ConfirmPassword) {
		errs.Add("confirm_password", "confirm_password is required")
	} else if r.ConfirmPassword != r.Password {
		errs.Add("confirm_password", "passwords do not match")
	}

	// Optional contact details
	errs.MaxLen("position", r.Position, 100)
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone must be 7-15 digits, optionally starting with +")
	}

	return errs.Err()
}

// UpdateProfileRequest is the self-service profile edit.
type UpdateProfileRequest struct {
	Position *string `json:"position,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors
	validateContact(&errs, r.Position, r.Email, r.Phone)
	return errs.Err()
}

// UpdateEmployeeRequest is the HR edit of a directory entry.
type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Grade      *string `json:"grade,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil {
		errs.Required("full_name", *r.FullName)
		errs.MaxLen("full_name", *r.FullName, 200)
	}
	if r.Department != nil {
		errs.MaxLen("department", *r.Department, 100)
	}
	if r.Grade != nil {
		errs.MaxLen("grade", *r.Grade, 50)
	}
	validateContact(&errs, r.Position, r.Email, r.Phone)

	return errs.Err()
}

func validateContact(errs *validator.ValidationErrors, position, email, phone *string) {
	if position != nil {
		errs.MaxLen("position", *position, 100)
	}
	if email != nil && *email != "" && !validator.IsValidEmail(*email) {
		errs.Add("email", "email must be a valid email address")
	}
	if phone != nil && *phone != "" && !validator.IsValidPhoneNumber(*phone) {
		errs.Add("phone", "phone must be 7-15 digits, optionally starting with +")
	}
}

type EmployeeFilter struct {
	Search     string
	Registered *bool
	Page       int
	Limit      int
}

// Normalize clamps paging to sane defaults.
func (f *EmployeeFilter) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f EmployeeFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	AccountID         *string `json:"account_id,omitempty"`
	FullName          string  `json:"full_name"`
	Position          *string `json:"position,omitempty"`
	Department        *string `json:"department,omitempty"`
	Grade             *string `json:"grade,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	IsRegistered      bool    `json:"is_registered"`
	LastPromotionDate *string `json:"last_promotion_date,omitempty"`
	CanApply          bool    `json:"can_apply"`
	EligibleFrom      *string `json:"eligible_from,omitempty"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalItems int64              `json:"total_items"`
}

// ToResponse maps e for the API, evaluating eligibility against today.
func ToResponse(e Employee, today time.Time) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		AccountID:    e.AccountID,
		FullName:     e.FullName,
		Position:     e.Position,
		Department:   e.Department,
		Grade:        e.Grade,
		Email:        e.Email,
		Phone:        e.Phone,
		IsRegistered: e.IsRegistered,
		CanApply:     CanApply(e, today),
	}
	if e.LastPromotionDate != nil {
		s := e.LastPromotionDate.Format(validator.DateLayout)
		resp.LastPromotionDate = &s
	}
	if from := e.EligibleFrom(); from != nil {
		s := from.Format(validator.DateLayout)
		resp.EligibleFrom = &s
	}
	return resp
}
