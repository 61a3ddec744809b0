package employee

import (
	"log/slog"

	"github.com/frahmantamala/hr-management/internal"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	Create(e *employeeDatamodel.Employee) error
	ListWithDepartment(companyID int64) ([]*RowWithDepartment, error)
	GetByIDForCompany(id, companyID int64) (*employeeDatamodel.Employee, error)
	GetDepartmentForCompany(departmentID, companyID int64) (*departmentDatamodel.Department, error)
	DepartmentNameByID(departmentID int64) (*string, error)
	Update(e *employeeDatamodel.Employee) error
	Delete(e *employeeDatamodel.Employee) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create stores a new employee for the caller's company. The department
// must already exist under the same company; a department id from another
// tenant is rejected before anything is written.
func (s *Service) Create(dto EmployeeDTO, companyID int64) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.repo.GetDepartmentForCompany(dto.DepartmentID, companyID)
	if err != nil {
		s.logger.Error("create employee: department lookup failed", "department_id", dto.DepartmentID, "error", err)
		return nil, internal.NewInternalError("could not look up department", err)
	}
	if dept == nil {
		return nil, internal.ErrInvalidDepartment
	}

	record := &employeeDatamodel.Employee{
		Name:         dto.Name,
		Email:        dto.Email,
		JobTitle:     dto.JobTitle,
		Salary:       dto.Salary,
		JoinDate:     dto.JoinDate,
		DepartmentID: dept.ID,
		CompanyID:    companyID,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("create employee failed", "email", dto.Email, "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not create employee", err)
	}

	s.logger.Info("created employee", "id", record.ID, "company_id", companyID)

	return FromDataModel(record, &dept.Name), nil
}

// GetAll returns the tenant's employees joined with their department name.
func (s *Service) GetAll(companyID int64) ([]*Employee, error) {
	rows, err := s.repo.ListWithDepartment(companyID)
	if err != nil {
		s.logger.Error("list employees failed", "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not list employees", err)
	}

	employees := make([]*Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, FromJoinedRow(row))
	}
	return employees, nil
}

// GetByID returns one employee scoped to the tenant. A missing department
// row yields a null department_name rather than an error.
func (s *Service) GetByID(id, companyID int64) (*Employee, error) {
	record, err := s.repo.GetByIDForCompany(id, companyID)
	if err != nil {
		s.logger.Error("get employee failed", "id", id, "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not load employee", err)
	}
	if record == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	departmentName, err := s.repo.DepartmentNameByID(record.DepartmentID)
	if err != nil {
		s.logger.Warn("get employee: department name lookup failed", "department_id", record.DepartmentID, "error", err)
		departmentName = nil
	}

	return FromDataModel(record, departmentName), nil
}

// Update replaces every mutable field atomically. The field list is
// fixed: nothing outside it can be assigned, whatever the payload says.
func (s *Service) Update(id, companyID int64, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByIDForCompany(id, companyID)
	if err != nil {
		s.logger.Error("update employee: load failed", "id", id, "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not load employee", err)
	}
	if record == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	dept, err := s.repo.GetDepartmentForCompany(dto.DepartmentID, companyID)
	if err != nil {
		s.logger.Error("update employee: department lookup failed", "department_id", dto.DepartmentID, "error", err)
		return nil, internal.NewInternalError("could not look up department", err)
	}
	if dept == nil {
		return nil, internal.ErrInvalidDepartment
	}

	record.Name = dto.Name
	record.Email = dto.Email
	record.JobTitle = dto.JobTitle
	record.Salary = dto.Salary
	record.JoinDate = dto.JoinDate
	record.DepartmentID = dept.ID

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("update employee failed", "id", id, "error", err)
		return nil, internal.NewInternalError("could not update employee", err)
	}

	s.logger.Info("updated employee", "id", record.ID, "company_id", companyID)

	return FromDataModel(record, &dept.Name), nil
}

// Delete removes an employee scoped to the tenant.
func (s *Service) Delete(id, companyID int64) error {
	record, err := s.repo.GetByIDForCompany(id, companyID)
	if err != nil {
		s.logger.Error("delete employee: load failed", "id", id, "company_id", companyID, "error", err)
		return internal.NewInternalError("could not load employee", err)
	}
	if record == nil {
		return internal.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(record); err != nil {
		s.logger.Error("delete employee failed", "id", id, "error", err)
		return internal.NewInternalError("could not delete employee", err)
	}

	s.logger.Info("deleted employee", "id", id, "company_id", companyID)
	return nil
}
