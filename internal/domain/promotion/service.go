package promotion

import (
	"context"

	"github.com/awash-hr/job-portal/internal/domain/auth"
)

type PromotionService interface {
	// RecordPromotion appends a ledger entry and moves the employee's grade
	// (staff only). Rejected while the cooldown is active.
	RecordPromotion(ctx context.Context, identity auth.Identity, employeeID string, req RecordPromotionRequest) (PromotionResponse, error)

	// ListPromotions lists one employee's history, or everyone's for staff
	// when employeeID is empty.
	ListPromotions(ctx context.Context, identity auth.Identity, employeeID string) ([]PromotionResponse, error)
}
