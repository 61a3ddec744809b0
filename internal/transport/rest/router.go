package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/department"
	"github.com/frahmantamala/hr-management/internal/employee"
	"github.com/frahmantamala/hr-management/internal/reporting"
	"github.com/frahmantamala/hr-management/internal/schema"
	"github.com/frahmantamala/hr-management/internal/transport/middleware"
	"github.com/frahmantamala/hr-management/internal/transport/swagger"
)

type Handlers struct {
	Auth       *auth.Handler
	Department *department.Handler
	Employee   *employee.Handler
	Reporting  *reporting.Handler
	Schema     *schema.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Health check routes
	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	// Root-level alias for the schema init below; kept for older clients.
	router.Get("/create_tables", handlers.Schema.CreateTablesAlias)

	// Auth routes
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.Auth.Register)
		r.Post("/login", handlers.Auth.Login)

		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.AuthMiddleware)
			pr.Get("/me", handlers.Auth.Me)
		})
	})

	router.Route("/api", func(r chi.Router) {
		// Schema init is deliberately outside the auth group.
		r.Get("/create_db", handlers.Schema.CreateDB)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.AuthMiddleware)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Post("/", handlers.Department.CreateDepartment) // POST /api/departments
				dr.Get("/", handlers.Department.GetDepartments)    // GET /api/departments
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Post("/", handlers.Employee.CreateEmployee) // POST /api/employees
				er.Get("/", handlers.Employee.GetEmployees)    // GET /api/employees

				// The fixed /export segment must be registered before the
				// {id} routes so the id matcher cannot swallow it.
				er.Get("/export", handlers.Reporting.ExportEmployees) // GET /api/employees/export

				er.Get("/{id}", handlers.Employee.GetEmployee)       // GET /api/employees/:id
				er.Put("/{id}", handlers.Employee.UpdateEmployee)    // PUT /api/employees/:id
				er.Delete("/{id}", handlers.Employee.DeleteEmployee) // DELETE /api/employees/:id
			})

			pr.Get("/stats/summary", handlers.Reporting.GetSummary)

			pr.Route("/charts", func(cr chi.Router) {
				cr.Get("/salary_distribution", handlers.Reporting.GetSalaryDistribution)
				cr.Get("/department_pie", handlers.Reporting.GetDepartmentPie)
			})
		})
	})
}
