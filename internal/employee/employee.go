package employee

import (
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
)

type Employee struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	JobTitle       string  `json:"job_title"`
	Salary         float64 `json:"salary"`
	JoinDate       string  `json:"join_date"`
	DepartmentID   int64   `json:"department_id"`
	CompanyID      int64   `json:"company_id"`
	DepartmentName *string `json:"department_name"`
}

// RowWithDepartment is the scan target for the employee/department join.
type RowWithDepartment struct {
	ID             int64   `gorm:"column:id"`
	Name           string  `gorm:"column:name"`
	Email          string  `gorm:"column:email"`
	JobTitle       string  `gorm:"column:job_title"`
	Salary         float64 `gorm:"column:salary"`
	JoinDate       string  `gorm:"column:join_date"`
	DepartmentID   int64   `gorm:"column:department_id"`
	CompanyID      int64   `gorm:"column:company_id"`
	DepartmentName string  `gorm:"column:department_name"`
}

func FromDataModel(e *employeeDatamodel.Employee, departmentName *string) *Employee {
	return &Employee{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		JobTitle:       e.JobTitle,
		Salary:         e.Salary,
		JoinDate:       e.JoinDate,
		DepartmentID:   e.DepartmentID,
		CompanyID:      e.CompanyID,
		DepartmentName: departmentName,
	}
}

func FromJoinedRow(row *RowWithDepartment) *Employee {
	name := row.DepartmentName
	return &Employee{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		JobTitle:       row.JobTitle,
		Salary:         row.Salary,
		JoinDate:       row.JoinDate,
		DepartmentID:   row.DepartmentID,
		CompanyID:      row.CompanyID,
		DepartmentName: &name,
	}
}
