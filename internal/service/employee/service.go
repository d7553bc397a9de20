package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/awash-hr/job-portal/internal/domain/account"
	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/awash-hr/job-portal/internal/pkg/validator"
	authservice "github.com/awash-hr/job-portal/internal/service/auth"
)

type EmployeeServiceImpl struct {
	tx database.Transactor
	employee.EmployeeRepository
	roster.RosterRepository
	account.AccountRepository
	clock clock.Clock
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepository employee.EmployeeRepository,
	rosterRepository roster.RosterRepository,
	accountRepository account.AccountRepository,
	c clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:                 tx,
		EmployeeRepository: employeeRepository,
		RosterRepository:   rosterRepository,
		AccountRepository:  accountRepository,
		clock:              c,
	}
}

// reconcile re-derives is_registered from the existence of the account keyed
// by the employee id and persists the flag when it drifted.
func (s *EmployeeServiceImpl) reconcile(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	acct, err := s.AccountRepository.GetByUsername(ctx, emp.EmployeeID)
	switch {
	case err == nil:
		if emp.IsRegistered && emp.AccountID != nil && *emp.AccountID == acct.ID {
			return emp, nil
		}
		emp.IsRegistered = true
		emp.AccountID = &acct.ID
	case errors.Is(err, account.ErrAccountNotFound):
		if !emp.IsRegistered && emp.AccountID == nil {
			return emp, nil
		}
		slog.Info("Clearing stale registration flag", "employee_id", emp.EmployeeID)
		emp.IsRegistered = false
		emp.AccountID = nil
	default:
		return employee.Employee{}, fmt.Errorf("failed to check linked account for %s: %w", emp.EmployeeID, err)
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to persist registration flag for %s: %w", emp.EmployeeID, err)
	}
	return updated, nil
}

// LookupForRegistration implements employee.EmployeeService.
func (s *EmployeeServiceImpl) LookupForRegistration(ctx context.Context, employeeID string) (employee.RegistrationLookupResponse, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return employee.RegistrationLookupResponse{}, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}

	// Directory first
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err == nil {
		emp, err = s.reconcile(ctx, emp)
		if err != nil {
			return employee.RegistrationLookupResponse{}, err
		}
		if emp.IsRegistered {
			return registeredLookup(employeeID), nil
		}
		return employee.RegistrationLookupResponse{
			EmployeeID: emp.EmployeeID,
			Status:     employee.LookupStatusAvailable,
			FullName:   emp.FullName,
			Position:   emp.Position,
			Department: emp.Department,
			Email:      emp.Email,
		}, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.RegistrationLookupResponse{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}

	// Roster fallback
	rec, err := s.RosterRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, roster.ErrRecordNotFound) {
			return employee.RegistrationLookupResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.RegistrationLookupResponse{}, fmt.Errorf("failed to get roster record %s: %w", employeeID, err)
	}

	exists, err := s.AccountRepository.ExistsByUsername(ctx, employeeID)
	if err != nil {
		return employee.RegistrationLookupResponse{}, fmt.Errorf("failed to check account for %s: %w", employeeID, err)
	}
	if exists {
		return registeredLookup(employeeID), nil
	}

	return employee.RegistrationLookupResponse{
		EmployeeID: rec.EmployeeID,
		Status:     employee.LookupStatusAvailable,
		FullName:   rec.FullName,
		Department: rec.Department,
		Email:      rec.Email,
	}, nil
}

func registeredLookup(employeeID string) employee.RegistrationLookupResponse {
	return employee.RegistrationLookupResponse{
		EmployeeID:   employeeID,
		Status:       employee.LookupStatusRegistered,
		IsRegistered: true,
	}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := authservice.HashPassword(req.Password)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var registered employee.Employee
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		emp, err := s.employeeForRegistration(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		fillEmpty(&emp.Phone, req.Phone)
		fillEmpty(&emp.Position, req.Position)
		if emp.Email == nil || *emp.Email == "" {
			if err := s.ensureEmailFree(txCtx, req.Email, emp.ID); err != nil {
				return err
			}
			fillEmpty(&emp.Email, req.Email)
		}

		first, last := account.SplitFullName(emp.FullName)
		acct, err := s.AccountRepository.Create(txCtx, account.Account{
			Username:     emp.EmployeeID,
			PasswordHash: hash,
			FirstName:    first,
			LastName:     last,
		})
		if err != nil {
			if errors.Is(err, account.ErrUsernameExists) {
				return employee.ErrAlreadyRegistered
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		emp.AccountID = &acct.ID
		emp.IsRegistered = true

		if emp.ID == "" {
			registered, err = s.EmployeeRepository.Create(txCtx, emp)
		} else {
			registered, err = s.EmployeeRepository.Update(txCtx, emp)
		}
		if err != nil {
			if errors.Is(err, employee.ErrAlreadyRegistered) {
				return err
			}
			return fmt.Errorf("failed to save employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee registered", "employee_id", registered.EmployeeID)
	return employee.ToResponse(registered, clock.Today(s.clock)), nil
}

// employeeForRegistration returns the directory row to register, or a new
// unsaved one built from the roster.
func (s *EmployeeServiceImpl) employeeForRegistration(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err == nil {
		emp, err = s.reconcile(ctx, emp)
		if err != nil {
			return employee.Employee{}, err
		}
		if emp.IsRegistered {
			return employee.Employee{}, employee.ErrAlreadyRegistered
		}
		return emp, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}

	rec, err := s.RosterRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, roster.ErrRecordNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get roster record %s: %w", employeeID, err)
	}

	return employee.Employee{
		EmployeeID: rec.EmployeeID,
		FullName:   rec.FullName,
		Department: rec.Department,
		Email:      rec.Email,
		Phone:      rec.Phone,
	}, nil
}

// ensureEmailFree fails when email belongs to an employee other than selfID.
func (s *EmployeeServiceImpl) ensureEmailFree(ctx context.Context, email, selfID string) error {
	if email == "" {
		return nil
	}
	other, err := s.EmployeeRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}
	if other.ID != selfID {
		return employee.ErrEmailExists
	}
	return nil
}

// DeleteAccount implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteAccount(ctx context.Context, identity auth.Identity, accountID string) error {
	if err := identity.RequireStaff(); err != nil {
		return err
	}
	if accountID == identity.AccountID {
		return account.ErrCannotDeleteSelf
	}

	return s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		acct, err := s.AccountRepository.GetByID(txCtx, accountID)
		if err != nil {
			return err
		}

		emp, err := s.EmployeeRepository.GetByAccountID(txCtx, acct.ID)
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			emp, err = s.EmployeeRepository.GetByEmployeeID(txCtx, acct.Username)
		}
		switch {
		case err == nil:
			if err := s.EmployeeRepository.Delete(txCtx, emp.ID); err != nil {
				return fmt.Errorf("failed to delete employee: %w", err)
			}
		case !errors.Is(err, employee.ErrEmployeeNotFound):
			return fmt.Errorf("failed to get employee for account: %w", err)
		}

		if err := s.AccountRepository.Delete(txCtx, acct.ID); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		slog.Info("Account deleted", "account_id", acct.ID, "username", acct.Username, "deleted_by", identity.AccountID)
		return nil
	})
}

// ResolveRegistered implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ResolveRegistered(ctx context.Context, identity auth.Identity) (employee.Employee, error) {
	if err := identity.RequireAuthenticated(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.EmployeeRepository.GetByAccountID(ctx, identity.AccountID)
	if errors.Is(err, employee.ErrEmployeeNotFound) && identity.EmployeeID != "" {
		emp, err = s.EmployeeRepository.GetByEmployeeID(ctx, identity.EmployeeID)
	}
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrRegisteredEmployeeOnly
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee for account: %w", err)
	}

	emp, err = s.reconcile(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsRegistered || emp.AccountID == nil || *emp.AccountID != identity.AccountID {
		return employee.Employee{}, employee.ErrRegisteredEmployeeOnly
	}
	return emp, nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context, identity auth.Identity) (employee.EmployeeResponse, error) {
	emp, err := s.ResolveRegistered(ctx, identity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp, clock.Today(s.clock)), nil
}

// UpdateMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateMyProfile(ctx context.Context, identity auth.Identity, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.ResolveRegistered(ctx, identity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.applyContact(ctx, &emp, req.Position, req.Email, req.Phone); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return employee.ToResponse(updated, clock.Today(s.clock)), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, identity auth.Identity, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	filter.Normalize()

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	today := clock.Today(s.clock)
	resp := employee.ListEmployeeResponse{
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}
	for _, emp := range employees {
		emp, err := s.reconcile(ctx, emp)
		if err != nil {
			return employee.ListEmployeeResponse{}, err
		}
		resp.Employees = append(resp.Employees, employee.ToResponse(emp, today))
	}
	return resp, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, identity auth.Identity, employeeID string) (employee.EmployeeResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp, err = s.reconcile(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp, clock.Today(s.clock)), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, identity auth.Identity, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp, err = s.reconcile(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Department != nil {
		emp.Department = optional(*req.Department)
	}
	if req.Grade != nil {
		emp.Grade = optional(*req.Grade)
	}
	if err := s.applyContact(ctx, &emp, req.Position, req.Email, req.Phone); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.ToResponse(updated, clock.Today(s.clock)), nil
}

func (s *EmployeeServiceImpl) applyContact(ctx context.Context, emp *employee.Employee, position, email, phone *string) error {
	if position != nil {
		emp.Position = optional(*position)
	}
	if email != nil {
		if err := s.ensureEmailFree(ctx, strings.TrimSpace(*email), emp.ID); err != nil {
			return err
		}
		emp.Email = optional(*email)
	}
	if phone != nil {
		emp.Phone = optional(*phone)
	}
	return nil
}

// optional trims s and maps blank to nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// fillEmpty sets *dst from value only when dst is unset.
func fillEmpty(dst **string, value string) {
	if *dst != nil && **dst != "" {
		return
	}
	if v := optional(value); v != nil {
		*dst = v
	}
}
