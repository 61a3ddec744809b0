package postgres

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal/reporting"
)

// ReportingRepository implements reporting.RepositoryAPI using GORM
type ReportingRepository struct {
	db *gorm.DB
}

func NewReportingRepository(db *gorm.DB) reporting.RepositoryAPI {
	return &ReportingRepository{db: db}
}

func (r *ReportingRepository) SalariesWithDepartment(companyID int64) ([]reporting.SalaryRow, error) {
	var rows []reporting.SalaryRow
	err := r.db.Raw(`
		SELECT e.salary, d.name AS department_name
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE e.company_id = ?`, companyID).Scan(&rows).Error
	return rows, err
}

// DepartmentEmployeeCounts counts headcount per department in one grouped
// query. The left join keeps empty departments in the result.
func (r *ReportingRepository) DepartmentEmployeeCounts(companyID int64) ([]reporting.DepartmentCount, error) {
	var rows []reporting.DepartmentCount
	err := r.db.Raw(`
		SELECT d.name, COUNT(e.id) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id AND e.company_id = ?
		WHERE d.company_id = ?
		GROUP BY d.name`, companyID, companyID).Scan(&rows).Error
	return rows, err
}

func (r *ReportingRepository) ExportRows(companyID int64) ([]reporting.ExportRow, error) {
	var rows []reporting.ExportRow
	err := r.db.Raw(`
		SELECT e.id, e.name, e.email, e.job_title, e.salary, e.join_date,
		       d.name AS department_name
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE e.company_id = ?`, companyID).Scan(&rows).Error
	return rows, err
}
