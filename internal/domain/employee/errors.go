package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateNIK     = errors.New("NIK already exists")
	ErrHasOvertime      = errors.New("employee has overtime entries")
)
