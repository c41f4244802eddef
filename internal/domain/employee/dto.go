package employee

import (
	"fmt"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	NIK             string  `json:"nik"`
	FullName        string  `json:"full_name"`
	DepartmentID    string  `json:"department_id"`
	Position        string  `json:"position"`
	LaptopAllowance bool    `json:"laptop_allowance"`
	MealAllowance   bool    `json:"meal_allowance"`
	Address         *string `json:"address,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	JoinDate        *string `json:"join_date,omitempty"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validateEmployeeFields(r.NIK, r.FullName, r.DepartmentID, r.Position, r.Address, r.PhoneNumber, r.JoinDate)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID              string  `json:"-"`
	NIK             string  `json:"nik"`
	FullName        string  `json:"full_name"`
	DepartmentID    string  `json:"department_id"`
	Position        string  `json:"position"`
	LaptopAllowance bool    `json:"laptop_allowance"`
	MealAllowance   bool    `json:"meal_allowance"`
	Address         *string `json:"address,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	JoinDate        *string `json:"join_date,omitempty"` // YYYY-MM-DD
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = append(errs, validateEmployeeFields(r.NIK, r.FullName, r.DepartmentID, r.Position, r.Address, r.PhoneNumber, r.JoinDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEmployeeFields(nik, fullName, departmentID, position string, address, phoneNumber, joinDate *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	// NIK
	if validator.IsEmpty(nik) {
		errs = append(errs, validator.ValidationError{
			Field:   "nik",
			Message: "NIK is required",
		})
	} else if validator.ExceedsLength(nik, MaxNIKLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "nik",
			Message: fmt.Sprintf("NIK must not exceed %d characters", MaxNIKLength),
		})
	}

	// Full name
	if validator.IsEmpty(fullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "Full Name is required",
		})
	} else if validator.ExceedsLength(fullName, MaxFullNameLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: fmt.Sprintf("Full Name must not exceed %d characters", MaxFullNameLength),
		})
	}

	// Department
	if validator.IsEmpty(departmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "Department is required",
		})
	} else if !validator.IsValidUUID(departmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	// Position
	if validator.IsEmpty(position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "Position is required",
		})
	} else if validator.ExceedsLength(position, MaxPositionLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: fmt.Sprintf("Position must not exceed %d characters", MaxPositionLength),
		})
	}

	if address != nil && validator.ExceedsLength(*address, MaxAddressLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: fmt.Sprintf("Address must not exceed %d characters", MaxAddressLength),
		})
	}

	if phoneNumber != nil && validator.ExceedsLength(*phoneNumber, MaxPhoneNumberLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: fmt.Sprintf("Phone Number must not exceed %d characters", MaxPhoneNumberLength),
		})
	}

	if joinDate != nil && *joinDate != "" {
		if _, valid := validator.IsValidDate(*joinDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}

	return errs
}

type EmployeeFilter struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	if errs := pagination.Validate(&f.Page, &f.Limit); len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string  `json:"employee_id"`
	NIK             string  `json:"nik"`
	FullName        string  `json:"full_name"`
	DepartmentID    string  `json:"department_id"`
	DepartmentName  string  `json:"department_name,omitempty"`
	Position        string  `json:"position"`
	LaptopAllowance bool    `json:"laptop_allowance"`
	MealAllowance   bool    `json:"meal_allowance"`
	Address         *string `json:"address,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	JoinDate        *string `json:"join_date,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}

// EmployeeOption is a dropdown entry rendered as "NIK - Full Name".
type EmployeeOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}
