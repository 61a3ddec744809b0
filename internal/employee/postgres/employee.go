package postgres

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal/employee"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
)

// EmployeeRepository implements employee.RepositoryAPI using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(e *employeeDatamodel.Employee) error {
	return r.db.Create(e).Error
}

// ListWithDepartment inner-joins employees with their department for one
// company. Rows come back in store order; no ordering is guaranteed.
func (r *EmployeeRepository) ListWithDepartment(companyID int64) ([]*employee.RowWithDepartment, error) {
	var rows []*employee.RowWithDepartment
	err := r.db.Raw(`
		SELECT e.id, e.name, e.email, e.job_title, e.salary, e.join_date,
		       e.department_id, e.company_id, d.name AS department_name
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE e.company_id = ?`, companyID).Scan(&rows).Error
	return rows, err
}

func (r *EmployeeRepository) GetByIDForCompany(id, companyID int64) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetDepartmentForCompany(departmentID, companyID int64) (*departmentDatamodel.Department, error) {
	var d departmentDatamodel.Department
	err := r.db.Where("id = ? AND company_id = ?", departmentID, companyID).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// DepartmentNameByID returns nil when the department row is missing; the
// caller renders that as a null department_name.
func (r *EmployeeRepository) DepartmentNameByID(departmentID int64) (*string, error) {
	var name string
	row := r.db.Raw(`SELECT name FROM departments WHERE id = ?`, departmentID).Row()
	if err := row.Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &name, nil
}

func (r *EmployeeRepository) Update(e *employeeDatamodel.Employee) error {
	return r.db.Save(e).Error
}

func (r *EmployeeRepository) Delete(e *employeeDatamodel.Employee) error {
	return r.db.Delete(e).Error
}
