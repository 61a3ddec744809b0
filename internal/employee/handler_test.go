package employee_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hr-management/internal/auth"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/hr-management/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-management/internal/employee/postgres"
	"github.com/frahmantamala/hr-management/internal/transport"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db          *gorm.DB
		router      *chi.Mux
		engineering *departmentDatamodel.Department
	)

	caller := &auth.User{ID: 1, Username: "alice", Email: "alice@acme.example", CompanyID: 1}

	withCaller := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), caller)))
		})
	}

	employeeBody := func(departmentID int64) string {
		return fmt.Sprintf(`{
			"name": "Jane Roe",
			"email": "jane@acme.example",
			"job_title": "Engineer",
			"salary": 85000,
			"join_date": "2024-03-01",
			"department_id": %d
		}`, departmentID)
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&departmentDatamodel.Department{}, &employeeDatamodel.Employee{})
		Expect(err).NotTo(HaveOccurred())

		engineering = &departmentDatamodel.Department{Name: "Engineering", CompanyID: 1}
		Expect(db.Create(engineering).Error).To(Succeed())

		repo := employeePostgres.NewEmployeeRepository(db)
		service := employee.NewService(repo, slogger)
		handler := employee.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		router.Use(withCaller)
		router.Post("/api/employees", handler.CreateEmployee)
		router.Get("/api/employees", handler.GetEmployees)
		router.Get("/api/employees/{id}", handler.GetEmployee)
		router.Put("/api/employees/{id}", handler.UpdateEmployee)
		router.Delete("/api/employees/{id}", handler.DeleteEmployee)
	})

	createEmployee := func(departmentID int64) employee.Employee {
		req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(employeeBody(departmentID)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		return created
	}

	It("creates an employee and answers 201 with the department name", func() {
		created := createEmployee(engineering.ID)
		Expect(created.ID).To(BeNumerically(">", 0))
		Expect(created.CompanyID).To(Equal(int64(1)))
		Expect(created.DepartmentName).NotTo(BeNil())
		Expect(*created.DepartmentName).To(Equal("Engineering"))
	})

	It("answers 400 when the department belongs to another company", func() {
		foreign := &departmentDatamodel.Department{Name: "Sales", CompanyID: 2}
		Expect(db.Create(foreign).Error).To(Succeed())

		req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(employeeBody(foreign.ID)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("Invalid department for this company"))
	})

	It("gets an employee by id", func() {
		created := createEmployee(engineering.ID)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/employees/%d", created.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var found employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&found)).To(Succeed())
		Expect(found.Email).To(Equal("jane@acme.example"))
	})

	It("answers 404 for a missing employee", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/employees/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("Employee not found"))
	})

	It("answers 400 for a non-numeric id", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/employees/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("updates an employee and answers 200", func() {
		created := createEmployee(engineering.ID)

		body := strings.Replace(employeeBody(engineering.ID), "85000", "92000", 1)
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/employees/%d", created.ID), strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var updated employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
		Expect(updated.Salary).To(Equal(92000.0))
	})

	It("deletes an employee and confirms it", func() {
		created := createEmployee(engineering.ID)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/employees/%d", created.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Employee deleted"))

		req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/employees/%d", created.ID), nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
