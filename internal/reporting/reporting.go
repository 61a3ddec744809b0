package reporting

// SalaryRow is one (salary, department_name) pair from the tenant's
// employee/department join.
type SalaryRow struct {
	Salary         float64 `gorm:"column:salary"`
	DepartmentName string  `gorm:"column:department_name"`
}

// DepartmentCount carries per-department headcount, including
// departments with zero employees.
type DepartmentCount struct {
	Name  string `gorm:"column:name"`
	Count int64  `gorm:"column:employee_count"`
}

// ExportRow is one CSV line of the employee export. The dataframe tags
// name the CSV columns.
type ExportRow struct {
	ID             int64   `gorm:"column:id" dataframe:"id"`
	Name           string  `gorm:"column:name" dataframe:"name"`
	Email          string  `gorm:"column:email" dataframe:"email"`
	JobTitle       string  `gorm:"column:job_title" dataframe:"job_title"`
	Salary         float64 `gorm:"column:salary" dataframe:"salary"`
	JoinDate       string  `gorm:"column:join_date" dataframe:"join_date"`
	DepartmentName string  `gorm:"column:department_name" dataframe:"department_name"`
}

// Summary is the salary statistics response. All salary figures stay
// float64; min and max are not narrowed to integers.
type Summary struct {
	TotalEmployees  int              `json:"total_employees"`
	AverageSalary   float64          `json:"average_salary"`
	MedianSalary    float64          `json:"median_salary"`
	MinSalary       float64          `json:"min_salary"`
	MaxSalary       float64          `json:"max_salary"`
	EmployeesByDept map[string]int64 `json:"employees_by_dept"`
}

// ChartResponse wraps a rendered chart as a data-URI PNG.
type ChartResponse struct {
	ImageBase64 string `json:"image_base64"`
}
