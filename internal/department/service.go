package department

import (
	"log/slog"

	"github.com/frahmantamala/hr-management/internal"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
)

type RepositoryAPI interface {
	Create(d *departmentDatamodel.Department) error
	GetAllForCompany(companyID int64) ([]*departmentDatamodel.Department, error)
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

// Create stores a department under the caller's company. The company id
// always comes from the authenticated user, never from the payload.
func (s *Service) Create(dto CreateDepartmentDTO, companyID int64) (*DepartmentResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &departmentDatamodel.Department{
		Name:      dto.Name,
		CompanyID: companyID,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create department", "name", dto.Name, "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not create department", err)
	}

	s.logger.Info("created department", "id", record.ID, "company_id", companyID)

	resp := FromDataModel(record).ToResponse()
	return &resp, nil
}

// GetAll lists the caller-tenant departments.
func (s *Service) GetAll(companyID int64) ([]DepartmentResponse, error) {
	records, err := s.repo.GetAllForCompany(companyID)
	if err != nil {
		s.logger.Error("failed to list departments", "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not list departments", err)
	}

	responses := make([]DepartmentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, FromDataModel(record).ToResponse())
	}
	return responses, nil
}
