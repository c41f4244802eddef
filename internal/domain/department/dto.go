package department

type DepartmentResponse struct {
	ID          string  `json:"department_id"`
	Name        string  `json:"department_name"`
	Description *string `json:"description,omitempty"`
}

// DepartmentOption is a dropdown entry.
type DepartmentOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}
