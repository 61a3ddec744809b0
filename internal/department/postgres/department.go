package postgres

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal/department"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
)

// DepartmentRepository implements department.RepositoryAPI using GORM
type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(d *departmentDatamodel.Department) error {
	return r.db.Create(d).Error
}

func (r *DepartmentRepository) GetAllForCompany(companyID int64) ([]*departmentDatamodel.Department, error) {
	var departments []*departmentDatamodel.Department
	err := r.db.Where("company_id = ?", companyID).Find(&departments).Error
	return departments, err
}
