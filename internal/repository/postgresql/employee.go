package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolationCode = "23503"

const employeeColumns = `e.id, e.nik, e.full_name, e.department_id, e.position, e.laptop_allowance, e.meal_allowance,
			e.address, e.phone_number, e.join_date, e.created_at, e.updated_at`

type employeeRepositoryImpl struct {
	db database.Pool
}

func NewEmployeeRepository(db database.Pool) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner, extra ...any) (employee.Employee, error) {
	var emp employee.Employee
	dest := []any{
		&emp.ID, &emp.NIK, &emp.FullName, &emp.DepartmentID, &emp.Position,
		&emp.LaptopAllowance, &emp.MealAllowance, &emp.Address, &emp.PhoneNumber,
		&emp.JoinDate, &emp.CreatedAt, &emp.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func scanEmployeeWithDepartment(row rowScanner) (employee.EmployeeWithDepartment, error) {
	var departmentName string
	emp, err := scanEmployee(row, &departmentName)
	if err != nil {
		return employee.EmployeeWithDepartment{}, err
	}
	return employee.EmployeeWithDepartment{Employee: emp, DepartmentName: departmentName}, nil
}

// translateEmployeePgError maps constraint violations raised on employee writes.
func translateEmployeePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case foreignKeyViolationCode:
		if pgErr.ConstraintName == "overtimes_employee_id_fkey" {
			return employee.ErrHasOvertime
		}
		return department.ErrDepartmentNotFound
	}
	return err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.EmployeeWithDepartment, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `, d.department_name
		FROM employees e
		INNER JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	found, err := scanEmployeeWithDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeWithDepartment{}, err
		}
		return employee.EmployeeWithDepartment{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return found, nil
}

// LockByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) LockByID(ctx context.Context, id string, exclusive bool) error {
	q := GetQuerier(ctx, e.db)

	query := `SELECT id FROM employees WHERE id = $1 FOR SHARE`
	if exclusive {
		query = `SELECT id FROM employees WHERE id = $1 FOR UPDATE`
	}

	var lockedID string
	if err := q.QueryRow(ctx, query, id).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to lock employee with id %s: %w", id, err)
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeWithDepartment, int64, error) {
	q := GetQuerier(ctx, e.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT ` + employeeColumns + `, d.department_name
		FROM employees e
		INNER JOIN departments d ON d.id = e.department_id
		ORDER BY e.created_at, e.id
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, filter.Limit, pagination.Offset(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.EmployeeWithDepartment, 0, filter.Limit)
	for rows.Next() {
		emp, err := scanEmployeeWithDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListOptions implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListOptions(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT id, nik, full_name FROM employees ORDER BY full_name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee options: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.NIK, &emp.FullName); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if newEmployee.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("generate employee id: %w", err)
		}
		newEmployee.ID = id.String()
	}

	query := `
		INSERT INTO employees AS e (
			id, nik, full_name, department_id, position, laptop_allowance, meal_allowance,
			address, phone_number, join_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.NIK, newEmployee.FullName, newEmployee.DepartmentID, newEmployee.Position,
		newEmployee.LaptopAllowance, newEmployee.MealAllowance, newEmployee.Address, newEmployee.PhoneNumber,
		newEmployee.JoinDate,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees AS e
		SET nik = $1, full_name = $2, department_id = $3, position = $4, laptop_allowance = $5,
			meal_allowance = $6, address = $7, phone_number = $8, join_date = $9, updated_at = NOW()
		WHERE e.id = $10
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.NIK, emp.FullName, emp.DepartmentID, emp.Position, emp.LaptopAllowance,
		emp.MealAllowance, emp.Address, emp.PhoneNumber, emp.JoinDate, emp.ID,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// LockNIK implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) LockNIK(ctx context.Context, nik string) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, nik); err != nil {
		return fmt.Errorf("failed to lock NIK %s: %w", nik, err)
	}
	return nil
}

// ExistsByNIK implements employee.NIKLookup.
func (e *employeeRepositoryImpl) ExistsByNIK(ctx context.Context, nik string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE nik = $1 AND ($2::uuid IS NULL OR id <> $2::uuid))`

	var exists bool
	if err := q.QueryRow(ctx, query, nik, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
