package overtime

import "context"

// OvertimeService defines business logic for overtime entries
type OvertimeService interface {
	GetOvertime(ctx context.Context, id string) (OvertimeResponse, error)
	CreateOvertime(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	UpdateOvertime(ctx context.Context, req UpdateOvertimeRequest) (OvertimeResponse, error)
	DeleteOvertime(ctx context.Context, id string) error
	ListOvertimes(ctx context.Context, filter OvertimeFilter) (ListOvertimeResponse, error)
}
