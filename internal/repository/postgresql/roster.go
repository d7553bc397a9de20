package postgresql

import (
	"context"
	"errors"

	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepositoryImpl{db: db}
}

// GetByEmployeeID implements roster.RosterRepository.
func (r *rosterRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (roster.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, full_name, department, email, phone, created_at
		FROM roster_records
		WHERE employee_id = $1
	`

	var rec roster.Record
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&rec.EmployeeID, &rec.FullName, &rec.Department, &rec.Email, &rec.Phone, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.Record{}, roster.ErrRecordNotFound
		}
		return roster.Record{}, err
	}
	return rec, nil
}

// CreateIfAbsent implements roster.RosterRepository.
func (r *rosterRepositoryImpl) CreateIfAbsent(ctx context.Context, record roster.Record) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roster_records (employee_id, full_name, department, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, record.EmployeeID, record.FullName, record.Department, record.Email, record.Phone)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
