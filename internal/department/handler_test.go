package department_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hr-management/internal/auth"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	"github.com/frahmantamala/hr-management/internal/department"
	departmentPostgres "github.com/frahmantamala/hr-management/internal/department/postgres"
	"github.com/frahmantamala/hr-management/internal/transport"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *department.Handler
	)

	caller := &auth.User{ID: 1, Username: "alice", Email: "alice@acme.example", CompanyID: 1}

	authedRequest := func(method, target string, body string) *http.Request {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
		}
		return req.WithContext(auth.ContextWithUser(req.Context(), caller))
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&departmentDatamodel.Department{})
		Expect(err).NotTo(HaveOccurred())

		repo := departmentPostgres.NewDepartmentRepository(db)
		service := department.NewService(repo, slogger)
		handler = department.NewHandler(transport.NewBaseHandler(slogger), service)
	})

	It("creates a department and answers 201", func() {
		req := authedRequest(http.MethodPost, "/api/departments", `{"name":"Engineering"}`)
		w := httptest.NewRecorder()

		handler.CreateDepartment(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var created department.DepartmentResponse
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.Name).To(Equal("Engineering"))
		Expect(created.CompanyID).To(Equal(int64(1)))
	})

	It("answers 400 for an empty name", func() {
		req := authedRequest(http.MethodPost, "/api/departments", `{"name":""}`)
		w := httptest.NewRecorder()

		handler.CreateDepartment(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("answers 400 for a malformed body", func() {
		req := authedRequest(http.MethodPost, "/api/departments", `{`)
		w := httptest.NewRecorder()

		handler.CreateDepartment(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("answers 401 without an authenticated user", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
		w := httptest.NewRecorder()

		handler.GetDepartments(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("lists only the caller's departments", func() {
		Expect(db.Create(&departmentDatamodel.Department{Name: "Engineering", CompanyID: 1}).Error).To(Succeed())
		Expect(db.Create(&departmentDatamodel.Department{Name: "Marketing", CompanyID: 2}).Error).To(Succeed())

		req := authedRequest(http.MethodGet, "/api/departments", "")
		w := httptest.NewRecorder()

		handler.GetDepartments(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var list []department.DepartmentResponse
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Name).To(Equal("Engineering"))
	})
})
