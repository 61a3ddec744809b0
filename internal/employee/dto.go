package employee

// EmployeeDTO is the transport shape for both create and full-replacement
// update. There is no company_id field on purpose: the tenant always
// comes from the authenticated caller.
type EmployeeDTO struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	JobTitle     string  `json:"job_title"`
	Salary       float64 `json:"salary"`
	JoinDate     string  `json:"join_date"`
	DepartmentID int64   `json:"department_id"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d EmployeeDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.JobTitle == "" {
		return ValidationError{Msg: "job_title is required"}
	}
	if d.JoinDate == "" {
		return ValidationError{Msg: "join_date is required"}
	}
	if d.Salary < 0 {
		return ValidationError{Msg: "salary must not be negative"}
	}
	if d.DepartmentID <= 0 {
		return ValidationError{Msg: "department_id is required"}
	}
	return nil
}
