package reporting

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"

	"github.com/frahmantamala/hr-management/internal"
)

type RepositoryAPI interface {
	SalariesWithDepartment(companyID int64) ([]SalaryRow, error)
	DepartmentEmployeeCounts(companyID int64) ([]DepartmentCount, error)
	ExportRows(companyID int64) ([]ExportRow, error)
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

// Summary computes count, mean, median, min, max salary and headcount per
// department. An empty tenant gets a zeroed summary, not an error.
func (s *Service) Summary(companyID int64) (*Summary, error) {
	rows, err := s.repo.SalariesWithDepartment(companyID)
	if err != nil {
		s.logger.Error("summary: salary query failed", "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not load salary data", err)
	}

	if len(rows) == 0 {
		return &Summary{EmployeesByDept: map[string]int64{}}, nil
	}

	salaries := make([]float64, len(rows))
	byDept := make(map[string]int64)
	for i, row := range rows {
		salaries[i] = row.Salary
		byDept[row.DepartmentName]++
	}

	sorted := make([]float64, len(salaries))
	copy(sorted, salaries)
	sort.Float64s(sorted)

	return &Summary{
		TotalEmployees:  len(rows),
		AverageSalary:   stat.Mean(salaries, nil),
		MedianSalary:    stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		MinSalary:       sorted[0],
		MaxSalary:       sorted[len(sorted)-1],
		EmployeesByDept: byDept,
	}, nil
}

// SalaryDistributionChart renders the tenant's salaries as a fixed
// bucket-count histogram PNG, embedded in a data URI.
func (s *Service) SalaryDistributionChart(companyID int64) (*ChartResponse, error) {
	rows, err := s.repo.SalariesWithDepartment(companyID)
	if err != nil {
		s.logger.Error("salary chart: salary query failed", "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not load salary data", err)
	}
	if len(rows) == 0 {
		return nil, internal.ErrNoEmployeeData
	}

	salaries := make([]float64, len(rows))
	for i, row := range rows {
		salaries[i] = row.Salary
	}

	png, err := renderSalaryHistogram(salaries)
	if err != nil {
		s.logger.Error("salary chart: render failed", "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not render chart", err)
	}

	return &ChartResponse{ImageBase64: dataURI(png)}, nil
}

// DepartmentPieChart renders per-department headcount as a pie PNG. The
// counts come from one grouped query; departments with zero employees
// still appear as labels, matching the summary page's pie.
func (s *Service) DepartmentPieChart(companyID int64) (*ChartResponse, error) {
	counts, err := s.repo.DepartmentEmployeeCounts(companyID)
	if err != nil {
		s.logger.Error("pie chart: count query failed", "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not load department counts", err)
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}
	if len(counts) == 0 || total == 0 {
		return nil, internal.ErrNoChartData
	}

	png, err := renderDepartmentPie(counts)
	if err != nil {
		s.logger.Error("pie chart: render failed", "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not render chart", err)
	}

	return &ChartResponse{ImageBase64: dataURI(png)}, nil
}

// ExportCSV serializes the tenant's employees, department name resolved,
// as CSV bytes.
func (s *Service) ExportCSV(companyID int64) ([]byte, error) {
	rows, err := s.repo.ExportRows(companyID)
	if err != nil {
		s.logger.Error("export: employee query failed", "company_id", companyID, "error", err)
		return nil, internal.NewInternalError("could not load employee data", err)
	}
	if len(rows) == 0 {
		return nil, internal.ErrNoExportData
	}

	df := dataframe.LoadStructs(rows)
	if df.Error() != nil {
		s.logger.Error("export: dataframe load failed", "error", df.Error())
		return nil, internal.NewInternalError("could not build export", df.Error())
	}

	var buf bytes.Buffer
	if err := df.WriteCSV(&buf); err != nil {
		s.logger.Error("export: csv write failed", "error", err)
		return nil, internal.NewInternalError("could not serialize export", err)
	}

	return buf.Bytes(), nil
}

func dataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
