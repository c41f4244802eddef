package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Overtime rules
	case errors.Is(err, overtime.ErrInvalidTimeRange):
		RuleViolation(w, "INVALID_TIME_RANGE", "Time Finish must be later than Time Start!")
	case errors.Is(err, overtime.ErrOvertimeHoursExceeded):
		RuleViolation(w, "OT_HOURS_EXCEEDED", "Maximum Actual OT Hours is 3 hours!")
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime entry not found")
	case errors.Is(err, overtime.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Employee rules
	case errors.Is(err, employee.ErrDuplicateNIK):
		Conflict(w, "DUPLICATE_NIK", "NIK already exists! Please use a unique NIK.")
	case errors.Is(err, employee.ErrHasOvertime):
		Conflict(w, "DELETE_BLOCKED", "Cannot delete employee! This employee has overtime entries.")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
