package roster

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/database"
)

type ImportServiceImpl struct {
	tx database.Transactor
	roster.RosterRepository
	employees employee.EmployeeRepository
}

func NewImportService(tx database.Transactor, rosterRepository roster.RosterRepository, employeeRepository employee.EmployeeRepository) roster.ImportService {
	return &ImportServiceImpl{
		tx:               tx,
		RosterRepository: rosterRepository,
		employees:        employeeRepository,
	}
}

// ImportRoster implements roster.ImportService.
func (s *ImportServiceImpl) ImportRoster(ctx context.Context, filename string, r io.Reader) (roster.ImportResult, error) {
	rows, err := ReadRows(filename, r)
	if err != nil {
		return roster.ImportResult{}, err
	}

	result := roster.ImportResult{Rows: len(rows)}
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		for _, row := range rows {
			created, err := s.RosterRepository.CreateIfAbsent(txCtx, roster.Record{
				EmployeeID: row.EmployeeID,
				FullName:   row.FullName,
				Department: row.Department,
				Email:      row.Email,
				Phone:      row.Phone,
			})
			if err != nil {
				return fmt.Errorf("line %d (%s): %w", row.Line, row.EmployeeID, err)
			}
			if created {
				result.Created++
				slog.Debug("Roster record created", "employee_id", row.EmployeeID)
			} else {
				result.Skipped++
				slog.Debug("Roster record skipped, already exists", "employee_id", row.EmployeeID)
			}
		}
		return nil
	})
	if err != nil {
		return roster.ImportResult{}, fmt.Errorf("failed to import roster: %w", err)
	}

	slog.Info("Roster imported", "file", filename, "created", result.Created, "skipped", result.Skipped)
	return result, nil
}

// ImportEmployees implements roster.ImportService.
func (s *ImportServiceImpl) ImportEmployees(ctx context.Context, filename string, r io.Reader) (roster.ImportResult, error) {
	rows, err := ReadRows(filename, r)
	if err != nil {
		return roster.ImportResult{}, err
	}

	result := roster.ImportResult{Rows: len(rows)}
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		for _, row := range rows {
			// Directory rows also seed the roster so a deleted account can register again
			if _, err := s.RosterRepository.CreateIfAbsent(txCtx, roster.Record{
				EmployeeID: row.EmployeeID,
				FullName:   row.FullName,
				Department: row.Department,
				Email:      row.Email,
				Phone:      row.Phone,
			}); err != nil {
				return fmt.Errorf("line %d (%s): %w", row.Line, row.EmployeeID, err)
			}
			created, err := s.employees.Upsert(txCtx, employee.ImportRow{
				EmployeeID: row.EmployeeID,
				FullName:   row.FullName,
				Department: row.Department,
				Email:      row.Email,
				Phone:      row.Phone,
			})
			if err != nil {
				return fmt.Errorf("line %d (%s): %w", row.Line, row.EmployeeID, err)
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return roster.ImportResult{}, fmt.Errorf("failed to import employees: %w", err)
	}

	slog.Info("Employees imported", "file", filename, "created", result.Created, "updated", result.Updated)
	return result, nil
}
