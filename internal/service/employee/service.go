package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	txManager      database.Transactor
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	overtimeLookup employee.OvertimeLookup
}

func NewEmployeeService(
	txManager database.Transactor,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	overtimeLookup employee.OvertimeLookup,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		txManager:      txManager,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		overtimeLookup: overtimeLookup,
	}
}

// Helper function to map EmployeeWithDepartment to EmployeeResponse
func mapEmployeeToResponse(emp employee.EmployeeWithDepartment) employee.EmployeeResponse {
	var joinDateStr *string
	if emp.JoinDate != nil {
		s := emp.JoinDate.Format(validator.DateLayout)
		joinDateStr = &s
	}

	return employee.EmployeeResponse{
		ID:              emp.ID,
		NIK:             emp.NIK,
		FullName:        emp.FullName,
		DepartmentID:    emp.DepartmentID,
		DepartmentName:  emp.DepartmentName,
		Position:        emp.Position,
		LaptopAllowance: emp.LaptopAllowance,
		MealAllowance:   emp.MealAllowance,
		Address:         emp.Address,
		PhoneNumber:     emp.PhoneNumber,
		JoinDate:        joinDateStr,
		CreatedAt:       emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// parseJoinDate returns nil for an absent join date.
func parseJoinDate(joinDate *string) (*time.Time, error) {
	if joinDate == nil || validator.IsEmpty(*joinDate) {
		return nil, nil
	}
	t, ok := validator.IsValidDate(*joinDate)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		}}
	}
	return &t, nil
}

func (s *EmployeeServiceImpl) ensureDepartmentExists(ctx context.Context, departmentID string) error {
	exists, err := s.departmentRepo.ExistsByID(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("failed to check department: %w", err)
	}
	if !exists {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.ensureDepartmentExists(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := parseJoinDate(req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		NIK:             req.NIK,
		FullName:        req.FullName,
		DepartmentID:    req.DepartmentID,
		Position:        req.Position,
		LaptopAllowance: req.LaptopAllowance,
		MealAllowance:   req.MealAllowance,
		Address:         req.Address,
		PhoneNumber:     req.PhoneNumber,
		JoinDate:        joinDate,
	}

	var created employee.EmployeeWithDepartment
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		// Held until commit so a concurrent writer with the same NIK sees this row.
		if err := s.employeeRepo.LockNIK(txCtx, newEmployee.NIK); err != nil {
			return err
		}
		if err := employee.EnsureUniqueNIK(txCtx, s.employeeRepo, newEmployee.NIK, nil); err != nil {
			return err
		}

		inserted, err := s.employeeRepo.Create(txCtx, newEmployee)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		created, err = s.employeeRepo.GetByID(txCtx, inserted.ID)
		if err != nil {
			return fmt.Errorf("failed to get created employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "nik", created.NIK)
	return mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.ensureDepartmentExists(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := parseJoinDate(req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:              req.ID,
		NIK:             req.NIK,
		FullName:        req.FullName,
		DepartmentID:    req.DepartmentID,
		Position:        req.Position,
		LaptopAllowance: req.LaptopAllowance,
		MealAllowance:   req.MealAllowance,
		Address:         req.Address,
		PhoneNumber:     req.PhoneNumber,
		JoinDate:        joinDate,
	}

	var updated employee.EmployeeWithDepartment
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.employeeRepo.LockByID(txCtx, emp.ID, true); err != nil {
			return err
		}
		if err := s.employeeRepo.LockNIK(txCtx, emp.NIK); err != nil {
			return err
		}
		if err := employee.EnsureUniqueNIK(txCtx, s.employeeRepo, emp.NIK, &emp.ID); err != nil {
			return err
		}

		if _, err := s.employeeRepo.Update(txCtx, emp); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, department.ErrDepartmentNotFound) {
				return err
			}
			return fmt.Errorf("failed to update employee: %w", err)
		}

		var err error
		updated, err = s.employeeRepo.GetByID(txCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to get updated employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		// FOR UPDATE blocks overtime writers that take FOR SHARE on the same row.
		if err := s.employeeRepo.LockByID(txCtx, id, true); err != nil {
			return err
		}
		if err := employee.EnsureDeletable(txCtx, s.overtimeLookup, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrHasOvertime) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("employee deleted", "employee_id", id)
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: pagination.TotalPages(total, filter.Limit),
		Showing:    pagination.Showing(filter.Page, filter.Limit, total),
		Employees:  responses,
	}, nil
}

// ListEmployeeOptions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployeeOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	employees, err := s.employeeRepo.ListOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee options: %w", err)
	}

	options := make([]employee.EmployeeOption, 0, len(employees))
	for _, emp := range employees {
		options = append(options, employee.EmployeeOption{
			Value: emp.ID,
			Text:  fmt.Sprintf("%s - %s", emp.NIK, emp.FullName),
		})
	}
	return options, nil
}
