package schema

import (
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	companyDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/company"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/transport"
)

// Service creates the four tables if they do not exist. Safe to call
// repeatedly; existing tables and data are left alone.
type Service struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewService(db *gorm.DB, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

func (s *Service) CreateTables() error {
	return s.db.AutoMigrate(
		&companyDatamodel.Company{},
		&userDatamodel.User{},
		&departmentDatamodel.Department{},
		&employeeDatamodel.Employee{},
	)
}

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(baseHandler *transport.BaseHandler, service *Service) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// CreateDB handles GET /api/create_db. It is intentionally left
// unauthenticated, matching the deployed behavior; goose migrations are
// the supported path for production schema management.
func (h *Handler) CreateDB(w http.ResponseWriter, r *http.Request) {
	h.createTables(w, "Database tables created successfully!")
}

// CreateTablesAlias handles GET /create_tables, the older root-level
// spelling of the same schema init. Same behavior, different message.
func (h *Handler) CreateTablesAlias(w http.ResponseWriter, r *http.Request) {
	h.createTables(w, "Tables created successfully")
}

func (h *Handler) createTables(w http.ResponseWriter, message string) {
	if err := h.Service.CreateTables(); err != nil {
		h.Logger.Error("schema init failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "could not create tables")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}
