package promotion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/promotion"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/awash-hr/job-portal/internal/pkg/email"
	"github.com/awash-hr/job-portal/internal/pkg/validator"
)

type PromotionServiceImpl struct {
	tx database.Transactor
	promotion.PromotionRepository
	employees       employee.EmployeeRepository
	employeeService employee.EmployeeService
	mailer          email.Mailer
	clock           clock.Clock
}

func NewPromotionService(
	tx database.Transactor,
	promotionRepository promotion.PromotionRepository,
	employeeRepository employee.EmployeeRepository,
	employeeService employee.EmployeeService,
	mailer email.Mailer,
	c clock.Clock,
) promotion.PromotionService {
	return &PromotionServiceImpl{
		tx:                  tx,
		PromotionRepository: promotionRepository,
		employees:           employeeRepository,
		employeeService:     employeeService,
		mailer:              mailer,
		clock:               c,
	}
}

// RecordPromotion implements promotion.PromotionService.
func (s *PromotionServiceImpl) RecordPromotion(ctx context.Context, identity auth.Identity, employeeID string, req promotion.RecordPromotionRequest) (promotion.PromotionResponse, error) {
	if err := identity.RequireStaff(); err != nil {
		return promotion.PromotionResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return promotion.PromotionResponse{}, err
	}

	today := clock.Today(s.clock)
	promotedAt := req.PromotedAtDate()
	if promotedAt.After(today) {
		return promotion.PromotionResponse{}, promotion.ErrPromotionInFuture
	}

	var (
		recorded promotion.Promotion
		promoted employee.Employee
	)
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		emp, err := s.employees.GetByEmployeeID(txCtx, employeeID)
		if err != nil {
			return err
		}
		if !employee.CanApply(emp, today) {
			return promotion.ErrPromotionCooldown
		}
		if emp.LastPromotionDate != nil && promotedAt.Before(clock.Date(*emp.LastPromotionDate)) {
			return promotion.ErrPromotionBeforeLast
		}

		recorded, err = s.PromotionRepository.Create(txCtx, promotion.Promotion{
			EmployeeID: emp.ID,
			OldGrade:   emp.Grade,
			NewGrade:   req.NewGrade,
			PromotedAt: promotedAt,
			Remarks:    req.Remarks,
		})
		if err != nil {
			return fmt.Errorf("failed to create promotion: %w", err)
		}

		emp.Grade = &req.NewGrade
		emp.LastPromotionDate = &promotedAt
		promoted, err = s.employees.Update(txCtx, emp)
		if err != nil {
			return fmt.Errorf("failed to update employee grade: %w", err)
		}
		return nil
	})
	if err != nil {
		return promotion.PromotionResponse{}, err
	}

	slog.Info("Promotion recorded", "employee_id", employeeID, "new_grade", req.NewGrade, "promoted_at", req.PromotedAt)
	s.notifyPromoted(promoted, recorded)
	return promotion.ToResponse(recorded), nil
}

// notifyPromoted mails the employee; failures are logged only.
func (s *PromotionServiceImpl) notifyPromoted(emp employee.Employee, p promotion.Promotion) {
	if s.mailer == nil || emp.Email == nil || *emp.Email == "" {
		return
	}
	data := email.PromotionRecorded{
		EmployeeName: emp.FullName,
		NewGrade:     p.NewGrade,
		PromotedAt:   p.PromotedAt.Format(validator.DateLayout),
	}
	if p.OldGrade != nil {
		data.OldGrade = *p.OldGrade
	}
	if from := emp.EligibleFrom(); from != nil {
		data.EligibleFrom = from.Format(validator.DateLayout)
	}
	if err := s.mailer.SendPromotionRecorded(*emp.Email, data); err != nil {
		slog.Error("Failed to send promotion notice", "employee_id", emp.EmployeeID, "error", err)
	}
}

// ListPromotions implements promotion.PromotionService.
func (s *PromotionServiceImpl) ListPromotions(ctx context.Context, identity auth.Identity, employeeID string) ([]promotion.PromotionResponse, error) {
	if err := identity.RequireAuthenticated(); err != nil {
		return nil, err
	}

	var internalID string
	if identity.IsStaff {
		if employeeID != "" {
			emp, err := s.employees.GetByEmployeeID(ctx, employeeID)
			if err != nil {
				return nil, err
			}
			internalID = emp.ID
		}
	} else {
		if employeeID != "" && employeeID != identity.EmployeeID {
			return nil, auth.ErrStaffAccessRequired
		}
		emp, err := s.employeeService.ResolveRegistered(ctx, identity)
		if err != nil {
			return nil, err
		}
		internalID = emp.ID
	}

	entries, err := s.PromotionRepository.List(ctx, internalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	resp := make([]promotion.PromotionResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, promotion.EntryToResponse(e))
	}
	return resp, nil
}
