package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, employee_id, account_id, full_name, position, department, grade,
	email, phone, is_registered, last_promotion_date, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.AccountID, &emp.FullName, &emp.Position,
		&emp.Department, &emp.Grade, &emp.Email, &emp.Phone, &emp.IsRegistered,
		&emp.LastPromotionDate, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (e *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg any) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + where

	found, err := scanEmployee(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return found, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.getOne(ctx, "id = $1", id)
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return e.getOne(ctx, "employee_id = $1", employeeID)
}

// GetByAccountID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByAccountID(ctx context.Context, accountID string) (employee.Employee, error) {
	return e.getOne(ctx, "account_id = $1", accountID)
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return e.getOne(ctx, "LOWER(email) = LOWER($1) ORDER BY is_registered DESC LIMIT 1", email)
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			employee_id, account_id, full_name, position, department, grade,
			email, phone, is_registered, last_promotion_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.AccountID, newEmployee.FullName, newEmployee.Position,
		newEmployee.Department, newEmployee.Grade, newEmployee.Email, newEmployee.Phone,
		newEmployee.IsRegistered, newEmployee.LastPromotionDate,
	))
	if err != nil {
		if isUniqueViolation(err, "") {
			return employee.Employee{}, employee.ErrAlreadyRegistered
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee %s: %w", newEmployee.EmployeeID, err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET account_id = $1, full_name = $2, position = $3, department = $4, grade = $5,
			email = $6, phone = $7, is_registered = $8, last_promotion_date = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.AccountID, emp.FullName, emp.Position, emp.Department, emp.Grade,
		emp.Email, emp.Phone, emp.IsRegistered, emp.LastPromotionDate, emp.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err, "") {
			return employee.Employee{}, employee.ErrAlreadyRegistered
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	return updated, nil
}

// Upsert implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Upsert(ctx context.Context, row employee.ImportRow) (bool, error) {
	q := GetQuerier(ctx, e.db)

	// xmax is zero only for freshly inserted tuples
	query := `
		INSERT INTO employees (employee_id, full_name, department, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
			department = EXCLUDED.department,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			updated_at = NOW()
		RETURNING (xmax = 0)
	`

	var created bool
	err := q.QueryRow(ctx, query, row.EmployeeID, row.FullName, row.Department, row.Email, row.Phone).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert employee %s: %w", row.EmployeeID, err)
	}
	return created, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE conditions
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR employee_id ILIKE $%d OR department ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Registered != nil {
		conditions = append(conditions, fmt.Sprintf("is_registered = $%d", argIdx))
		args = append(args, *filter.Registered)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY full_name ASC, employee_id ASC LIMIT $%d OFFSET $%d`,
		employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
