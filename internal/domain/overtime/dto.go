package overtime

import (
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOvertimeRequest struct {
	EmployeeID        string           `json:"employee_id"`
	Date              string           `json:"date"`        // YYYY-MM-DD
	TimeStart         string           `json:"time_start"`  // YYYY-MM-DD HH:MM or RFC3339
	TimeFinish        string           `json:"time_finish"` // YYYY-MM-DD HH:MM or RFC3339
	ActualOTHours     decimal.Decimal  `json:"actual_ot_hours"`
	CalculatedOTHours *decimal.Decimal `json:"calculated_ot_hours,omitempty"`
	Remarks           *string          `json:"remarks,omitempty"`
}

func (r *CreateOvertimeRequest) Validate() error {
	c, errs := parseCandidate(r.EmployeeID, r.Date, r.TimeStart, r.TimeFinish, r.ActualOTHours, r.Remarks)
	if len(errs) > 0 {
		return append(c.MissingFields(), errs...)
	}
	return Validate(c)
}

// Candidate returns the request as a rule candidate. Malformed timestamps are absent.
func (r *CreateOvertimeRequest) Candidate() Candidate {
	c, _ := parseCandidate(r.EmployeeID, r.Date, r.TimeStart, r.TimeFinish, r.ActualOTHours, r.Remarks)
	return c
}

type UpdateOvertimeRequest struct {
	ID                string           `json:"-"`
	EmployeeID        string           `json:"employee_id"`
	Date              string           `json:"date"`
	TimeStart         string           `json:"time_start"`
	TimeFinish        string           `json:"time_finish"`
	ActualOTHours     decimal.Decimal  `json:"actual_ot_hours"`
	CalculatedOTHours *decimal.Decimal `json:"calculated_ot_hours,omitempty"`
	Remarks           *string          `json:"remarks,omitempty"`
}

func (r *UpdateOvertimeRequest) Validate() error {
	if validator.IsEmpty(r.ID) {
		return validator.ValidationErrors{{
			Field:   "overtime_id",
			Message: "overtime_id is required",
		}}
	}

	c, errs := parseCandidate(r.EmployeeID, r.Date, r.TimeStart, r.TimeFinish, r.ActualOTHours, r.Remarks)
	if len(errs) > 0 {
		return append(c.MissingFields(), errs...)
	}
	return Validate(c)
}

func (r *UpdateOvertimeRequest) Candidate() Candidate {
	c, _ := parseCandidate(r.EmployeeID, r.Date, r.TimeStart, r.TimeFinish, r.ActualOTHours, r.Remarks)
	return c
}

// parseCandidate converts the raw form values. Empty values stay absent; values
// that are present but malformed are returned as format errors. Timestamps are
// normalised to UTC because the columns store wall-clock time without a zone.
func parseCandidate(employeeID, date, timeStart, timeFinish string, actual decimal.Decimal, remarks *string) (Candidate, validator.ValidationErrors) {
	var errs validator.ValidationErrors
	c := Candidate{
		EmployeeID:    employeeID,
		ActualOTHours: actual,
		Remarks:       remarks,
	}

	if !validator.IsEmpty(employeeID) && !validator.IsValidUUID(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if !validator.IsEmpty(date) {
		if d, ok := validator.IsValidDate(date); ok {
			c.Date = &d
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(timeStart) {
		if t, ok := validator.IsValidDateTime(timeStart); ok {
			t = t.UTC()
			c.TimeStart = &t
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "time_start",
				Message: "time_start must be in YYYY-MM-DD HH:MM format",
			})
		}
	}

	if !validator.IsEmpty(timeFinish) {
		if t, ok := validator.IsValidDateTime(timeFinish); ok {
			t = t.UTC()
			c.TimeFinish = &t
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "time_finish",
				Message: "time_finish must be in YYYY-MM-DD HH:MM format",
			})
		}
	}

	return c, errs
}

type OvertimeFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *OvertimeFilter) Validate() error {
	errs := pagination.Validate(&f.Page, &f.Limit)

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeResponse struct {
	ID                string          `json:"overtime_id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name,omitempty"`
	NIK               string          `json:"nik,omitempty"`
	Date              string          `json:"date"`
	TimeStart         string          `json:"time_start"`
	TimeFinish        string          `json:"time_finish"`
	ActualOTHours     decimal.Decimal `json:"actual_ot_hours"`
	CalculatedOTHours decimal.Decimal `json:"calculated_ot_hours"`
	Remarks           *string         `json:"remarks,omitempty"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

type ListOvertimeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Overtimes  []OvertimeResponse `json:"overtimes"`
}

// ToEntity returns the persistable part of c. Call only after Validate succeeded.
func (c Candidate) ToEntity() OverTime {
	return OverTime{
		EmployeeID:    c.EmployeeID,
		Date:          truncateToDate(*c.Date),
		TimeStart:     *c.TimeStart,
		TimeFinish:    *c.TimeFinish,
		ActualOTHours: c.ActualOTHours,
		Remarks:       c.Remarks,
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
