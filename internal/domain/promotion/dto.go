package promotion

import (
	"strings"
	"time"

	"github.com/awash-hr/job-portal/internal/pkg/validator"
)

type RecordPromotionRequest struct {
	NewGrade   string `json:"new_grade"`
	PromotedAt string `json:"promoted_at"`
	Remarks    string `json:"remarks"`
	promotedAt time.Time
}

func (r *RecordPromotionRequest) Validate() error {
	var errs validator.ValidationErrors

	r.NewGrade = strings.TrimSpace(r.NewGrade)
	r.PromotedAt = strings.TrimSpace(r.PromotedAt)
	r.Remarks = strings.TrimSpace(r.Remarks)

	errs.Required("new_grade", r.NewGrade)
	errs.MaxLen("new_grade", r.NewGrade, 50)

	if validator.IsEmpty(r.PromotedAt) {
		errs.Add("promoted_at", "promoted_at is required")
	} else if d, ok := validator.IsValidDate(r.PromotedAt); !ok {
		errs.Add("promoted_at", "promoted_at must be a valid date in YYYY-MM-DD format")
	} else {
		r.promotedAt = d
	}

	errs.MaxLen("remarks", r.Remarks, 1000)

	return errs.Err()
}

// PromotedAtDate is the parsed promotion date; only meaningful after Validate.
func (r *RecordPromotionRequest) PromotedAtDate() time.Time {
	return r.promotedAt
}

type PromotionResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeNumber string  `json:"employee_number,omitempty"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	OldGrade       *string `json:"old_grade,omitempty"`
	NewGrade       string  `json:"new_grade"`
	PromotedAt     string  `json:"promoted_at"`
	Remarks        string  `json:"remarks"`
}

func ToResponse(p Promotion) PromotionResponse {
	return PromotionResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		OldGrade:   p.OldGrade,
		NewGrade:   p.NewGrade,
		PromotedAt: p.PromotedAt.Format(validator.DateLayout),
		Remarks:    p.Remarks,
	}
}

func EntryToResponse(e Entry) PromotionResponse {
	resp := ToResponse(e.Promotion)
	resp.EmployeeNumber = e.EmployeeNumber
	resp.EmployeeName = e.EmployeeName
	return resp
}
