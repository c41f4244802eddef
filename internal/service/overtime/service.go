package overtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	txManager    database.Transactor
	overtimeRepo overtime.OvertimeRepository
	employeeRepo employee.EmployeeRepository

	// trustClientCalculated keeps a caller-supplied calculated_ot_hours instead
	// of recomputing it from the actual hours.
	trustClientCalculated bool
}

func NewOvertimeService(
	txManager database.Transactor,
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	trustClientCalculated bool,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		txManager:             txManager,
		overtimeRepo:          overtimeRepo,
		employeeRepo:          employeeRepo,
		trustClientCalculated: trustClientCalculated,
	}
}

func mapOvertimeToResponse(ot overtime.OverTimeWithEmployee) overtime.OvertimeResponse {
	return overtime.OvertimeResponse{
		ID:                ot.ID,
		EmployeeID:        ot.EmployeeID,
		EmployeeName:      ot.EmployeeName,
		NIK:               ot.NIK,
		Date:              ot.Date.Format(validator.DateLayout),
		TimeStart:         ot.TimeStart.Format(validator.DateTimeLayout),
		TimeFinish:        ot.TimeFinish.Format(validator.DateTimeLayout),
		ActualOTHours:     ot.ActualOTHours,
		CalculatedOTHours: ot.CalculatedOTHours,
		Remarks:           ot.Remarks,
		CreatedAt:         ot.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:         ot.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// lockEmployee keeps the referenced employee from being deleted until the
// transaction in ctx ends.
func (s *OvertimeServiceImpl) lockEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.LockByID(ctx, employeeID, false); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return overtime.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

// GetOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetOvertime(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	ot, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, overtime.ErrOvertimeNotFound) {
			return overtime.OvertimeResponse{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime: %w", err)
	}
	return mapOvertimeToResponse(ot), nil
}

// CreateOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CreateOvertime(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	entry := req.Candidate().ToEntity()
	entry.CalculatedOTHours = overtime.ResolveCalculatedHours(entry.ActualOTHours, req.CalculatedOTHours, s.trustClientCalculated)

	created, err := s.save(ctx, entry, s.overtimeRepo.Create)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	slog.Info("overtime created",
		"overtime_id", created.ID,
		"employee_id", created.EmployeeID,
		"calculated_ot_hours", created.CalculatedOTHours.String(),
	)
	return mapOvertimeToResponse(created), nil
}

// UpdateOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) UpdateOvertime(ctx context.Context, req overtime.UpdateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	entry := req.Candidate().ToEntity()
	entry.ID = req.ID
	entry.CalculatedOTHours = overtime.ResolveCalculatedHours(entry.ActualOTHours, req.CalculatedOTHours, s.trustClientCalculated)

	updated, err := s.save(ctx, entry, s.overtimeRepo.Update)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	slog.Info("overtime updated",
		"overtime_id", updated.ID,
		"employee_id", updated.EmployeeID,
		"calculated_ot_hours", updated.CalculatedOTHours.String(),
	)
	return mapOvertimeToResponse(updated), nil
}

func (s *OvertimeServiceImpl) save(
	ctx context.Context,
	entry overtime.OverTime,
	write func(context.Context, overtime.OverTime) (overtime.OverTime, error),
) (overtime.OverTimeWithEmployee, error) {
	var saved overtime.OverTimeWithEmployee
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.lockEmployee(txCtx, entry.EmployeeID); err != nil {
			return err
		}

		written, err := write(txCtx, entry)
		if err != nil {
			return err
		}

		saved, err = s.overtimeRepo.GetByID(txCtx, written.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, overtime.ErrEmployeeNotFound) || errors.Is(err, overtime.ErrOvertimeNotFound) {
			return overtime.OverTimeWithEmployee{}, err
		}
		slog.Error("failed to save overtime", "employee_id", entry.EmployeeID, "error", err)
		return overtime.OverTimeWithEmployee{}, fmt.Errorf("failed to save overtime: %w", err)
	}
	return saved, nil
}

// DeleteOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) DeleteOvertime(ctx context.Context, id string) error {
	if err := s.overtimeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, overtime.ErrOvertimeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete overtime: %w", err)
	}
	return nil
}

// ListOvertimes implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListOvertimes(ctx context.Context, filter overtime.OvertimeFilter) (overtime.ListOvertimeResponse, error) {
	if err := filter.Validate(); err != nil {
		return overtime.ListOvertimeResponse{}, err
	}

	entries, total, err := s.overtimeRepo.List(ctx, filter)
	if err != nil {
		return overtime.ListOvertimeResponse{}, fmt.Errorf("failed to list overtimes: %w", err)
	}

	responses := make([]overtime.OvertimeResponse, 0, len(entries))
	for _, ot := range entries {
		responses = append(responses, mapOvertimeToResponse(ot))
	}

	return overtime.ListOvertimeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: pagination.TotalPages(total, filter.Limit),
		Showing:    pagination.Showing(filter.Page, filter.Limit, total),
		Overtimes:  responses,
	}, nil
}
