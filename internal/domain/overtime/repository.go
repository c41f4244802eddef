package overtime

import "context"

type OvertimeRepository interface {
	GetByID(ctx context.Context, id string) (OverTimeWithEmployee, error)
	List(ctx context.Context, filter OvertimeFilter) ([]OverTimeWithEmployee, int64, error)
	Create(ctx context.Context, ot OverTime) (OverTime, error)
	Update(ctx context.Context, ot OverTime) (OverTime, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}
