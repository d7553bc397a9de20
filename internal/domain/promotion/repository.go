package promotion

import "context"

type PromotionRepository interface {
	Create(ctx context.Context, p Promotion) (Promotion, error)
	// List returns promotions by promoted_at descending; an empty employeeID
	// lists every employee.
	List(ctx context.Context, employeeID string) ([]Entry, error)
}
