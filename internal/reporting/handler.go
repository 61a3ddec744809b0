package reporting

import (
	"net/http"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	Summary(companyID int64) (*Summary, error)
	SalaryDistributionChart(companyID int64) (*ChartResponse, error)
	DepartmentPieChart(companyID int64) (*ChartResponse, error)
	ExportCSV(companyID int64) ([]byte, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.Service.Summary(user.CompanyID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetSalaryDistribution(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.Service.SalaryDistributionChart(user.CompanyID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetDepartmentPie(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.Service.DepartmentPieChart(user.CompanyID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// ExportEmployees streams the tenant's employees as a CSV attachment.
func (h *Handler) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	csvData, err := h.Service.ExportCSV(user.CompanyID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=employees.csv")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(csvData); err != nil {
		h.Logger.Error("export: response write failed", "error", err)
	}
}
