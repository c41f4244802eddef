package overtime

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	// MaxActualHours is the cap on self-reported overtime per entry.
	MaxActualHours = decimal.NewFromInt(3)
	// HoursMultiplier converts actual hours into compensated hours.
	HoursMultiplier = decimal.NewFromInt(2)
)

// Candidate is a proposed overtime entry. Nil or empty fields are absent.
type Candidate struct {
	EmployeeID    string
	Date          *time.Time
	TimeStart     *time.Time
	TimeFinish    *time.Time
	ActualOTHours decimal.Decimal
	Remarks       *string
}

// Validate decides whether c may be persisted. Checks run in order and stop at
// the first failing stage: required fields, time range, hours cap, field limits.
// Actual hours are not compared with the start/finish span.
func Validate(c Candidate) error {
	if errs := c.MissingFields(); len(errs) > 0 {
		return errs
	}

	if !c.TimeFinish.After(*c.TimeStart) {
		return ErrInvalidTimeRange
	}

	if c.ActualOTHours.GreaterThan(MaxActualHours) {
		return ErrOvertimeHoursExceeded
	}

	var errs validator.ValidationErrors
	if c.ActualOTHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_ot_hours",
			Message: "Actual OT Hours must not be negative",
		})
	}
	if c.Remarks != nil && validator.ExceedsLength(*c.Remarks, MaxRemarksLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "remarks",
			Message: fmt.Sprintf("Remarks must not exceed %d characters", MaxRemarksLength),
		})
	}
	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MissingFields reports every absent required field.
func (c Candidate) MissingFields() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(c.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "Employee is required",
		})
	}
	if c.Date == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date is required",
		})
	}
	if c.TimeStart == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "time_start",
			Message: "Time Start is required",
		})
	}
	if c.TimeFinish == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "time_finish",
			Message: "Time Finish is required",
		})
	}

	return errs
}

// CalculateHours returns the compensated hours for actual hours worked.
func CalculateHours(actual decimal.Decimal) decimal.Decimal {
	return actual.Mul(HoursMultiplier)
}

// ResolveCalculatedHours returns supplied when the caller is trusted and sent a
// value, and the recomputed hours otherwise.
func ResolveCalculatedHours(actual decimal.Decimal, supplied *decimal.Decimal, trustSupplied bool) decimal.Decimal {
	if trustSupplied && supplied != nil {
		return *supplied
	}
	return CalculateHours(actual)
}
