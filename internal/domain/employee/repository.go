package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (EmployeeWithDepartment, error)
	// LockByID locks the employee row for the rest of the transaction in ctx.
	// exclusive selects FOR UPDATE, otherwise FOR SHARE.
	LockByID(ctx context.Context, id string, exclusive bool) error
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeWithDepartment, int64, error)
	ListOptions(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	// LockNIK serialises writers competing for the same NIK until the transaction ends.
	LockNIK(ctx context.Context, nik string) error

	NIKLookup
}
