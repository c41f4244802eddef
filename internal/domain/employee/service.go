package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee after the NIK uniqueness check
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates an existing employee; the NIK check excludes the employee itself
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee deletes an employee that has no overtime entries
	DeleteEmployee(ctx context.Context, id string) error

	// ListEmployees lists employees page by page
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// ListEmployeeOptions returns "NIK - Full Name" entries ordered by full name
	ListEmployeeOptions(ctx context.Context) ([]EmployeeOption, error)
}
