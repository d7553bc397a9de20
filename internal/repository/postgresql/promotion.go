package postgresql

import (
	"context"
	"fmt"

	"github.com/awash-hr/job-portal/internal/domain/promotion"
	"github.com/awash-hr/job-portal/internal/pkg/database"
)

type promotionRepositoryImpl struct {
	db *database.DB
}

func NewPromotionRepository(db *database.DB) promotion.PromotionRepository {
	return &promotionRepositoryImpl{db: db}
}

// Create implements promotion.PromotionRepository.
func (r *promotionRepositoryImpl) Create(ctx context.Context, p promotion.Promotion) (promotion.Promotion, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO promotions (employee_id, old_grade, new_grade, promoted_at, remarks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, old_grade, new_grade, promoted_at, remarks, created_at
	`

	var created promotion.Promotion
	err := q.QueryRow(ctx, query, p.EmployeeID, p.OldGrade, p.NewGrade, p.PromotedAt, p.Remarks).Scan(
		&created.ID, &created.EmployeeID, &created.OldGrade, &created.NewGrade,
		&created.PromotedAt, &created.Remarks, &created.CreatedAt,
	)
	if err != nil {
		return promotion.Promotion{}, fmt.Errorf("failed to record promotion for employee %s: %w", p.EmployeeID, err)
	}
	return created, nil
}

// List implements promotion.PromotionRepository.
func (r *promotionRepositoryImpl) List(ctx context.Context, employeeID string) ([]promotion.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.old_grade, p.new_grade, p.promoted_at, p.remarks, p.created_at,
			e.employee_id, e.full_name
		FROM promotions p
		JOIN employees e ON e.id = p.employee_id
		WHERE ($1 = '' OR p.employee_id::text = $1)
		ORDER BY p.promoted_at DESC, p.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	defer rows.Close()

	entries := []promotion.Entry{}
	for rows.Next() {
		var e promotion.Entry
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.OldGrade, &e.NewGrade, &e.PromotedAt, &e.Remarks, &e.CreatedAt,
			&e.EmployeeNumber, &e.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
