package department

import "context"

// DepartmentService defines read operations over the department master data.
// Departments are created by the seed migration and are not edited through the API.
type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	ListDepartmentOptions(ctx context.Context) ([]DepartmentOption, error)
	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)
}
