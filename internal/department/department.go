package department

import (
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
)

type Department struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CompanyID int64  `json:"company_id"`
}

func (d *Department) ToResponse() DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CompanyID: d.CompanyID,
	}
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:        d.ID,
		Name:      d.Name,
		CompanyID: d.CompanyID,
	}
}
