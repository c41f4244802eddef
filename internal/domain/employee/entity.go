package employee

import (
	"time"
)

type Employee struct {
	ID              string
	NIK             string
	FullName        string
	DepartmentID    string
	Position        string
	LaptopAllowance bool
	MealAllowance   bool
	Address         *string
	PhoneNumber     *string
	JoinDate        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EmployeeWithDepartment is an employee row joined with its department name.
type EmployeeWithDepartment struct {
	Employee
	DepartmentName string
}

const (
	MaxNIKLength         = 20
	MaxFullNameLength    = 100
	MaxPositionLength    = 50
	MaxAddressLength     = 255
	MaxPhoneNumberLength = 20
)
