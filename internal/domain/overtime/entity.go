package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type OverTime struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	TimeStart         time.Time
	TimeFinish        time.Time
	ActualOTHours     decimal.Decimal
	CalculatedOTHours decimal.Decimal
	Remarks           *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OverTimeWithEmployee is an overtime row joined with the owning employee.
type OverTimeWithEmployee struct {
	OverTime
	EmployeeName string
	NIK          string
}

const MaxRemarksLength = 500
