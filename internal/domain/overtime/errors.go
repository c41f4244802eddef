package overtime

import "errors"

var (
	ErrOvertimeNotFound      = errors.New("overtime entry not found")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrInvalidTimeRange      = errors.New("time finish must be later than time start")
	ErrOvertimeHoursExceeded = errors.New("maximum actual OT hours is 3 hours")
)
