package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/hr-management/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-management/internal/employee/postgres"
)

func TestEmployeePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Postgres Suite")
}

var _ = Describe("Employee Repository", func() {
	var (
		db          *gorm.DB
		repo        employee.RepositoryAPI
		engineering *departmentDatamodel.Department
		sales       *departmentDatamodel.Department
	)

	newEmployee := func(email string, companyID, departmentID int64) *employeeDatamodel.Employee {
		return &employeeDatamodel.Employee{
			Name:         "Jane Roe",
			Email:        email,
			JobTitle:     "Engineer",
			Salary:       85000,
			JoinDate:     "2024-03-01",
			DepartmentID: departmentID,
			CompanyID:    companyID,
		}
	}

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&departmentDatamodel.Department{}, &employeeDatamodel.Employee{})
		Expect(err).NotTo(HaveOccurred())

		engineering = &departmentDatamodel.Department{Name: "Engineering", CompanyID: 1}
		Expect(db.Create(engineering).Error).NotTo(HaveOccurred())
		sales = &departmentDatamodel.Department{Name: "Sales", CompanyID: 2}
		Expect(db.Create(sales).Error).NotTo(HaveOccurred())

		repo = employeePostgres.NewEmployeeRepository(db)
	})

	Describe("Create", func() {
		It("assigns an id", func() {
			e := newEmployee("jane@acme.example", 1, engineering.ID)
			Expect(repo.Create(e)).To(Succeed())
			Expect(e.ID).To(BeNumerically(">", 0))
		})

		It("rejects a duplicate email", func() {
			Expect(repo.Create(newEmployee("jane@acme.example", 1, engineering.ID))).To(Succeed())
			err := repo.Create(newEmployee("jane@acme.example", 1, engineering.ID))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListWithDepartment", func() {
		BeforeEach(func() {
			Expect(repo.Create(newEmployee("jane@acme.example", 1, engineering.ID))).To(Succeed())
			Expect(repo.Create(newEmployee("sam@globex.example", 2, sales.ID))).To(Succeed())
		})

		It("joins the department name and filters by company", func() {
			rows, err := repo.ListWithDepartment(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Email).To(Equal("jane@acme.example"))
			Expect(rows[0].DepartmentName).To(Equal("Engineering"))
			Expect(rows[0].Salary).To(Equal(85000.0))
		})

		It("returns no rows for an empty company", func() {
			rows, err := repo.ListWithDepartment(42)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	Describe("GetByIDForCompany", func() {
		var created *employeeDatamodel.Employee

		BeforeEach(func() {
			created = newEmployee("jane@acme.example", 1, engineering.ID)
			Expect(repo.Create(created)).To(Succeed())
		})

		It("finds an employee in its own company", func() {
			found, err := repo.GetByIDForCompany(created.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.Email).To(Equal("jane@acme.example"))
		})

		It("returns nil across companies", func() {
			found, err := repo.GetByIDForCompany(created.ID, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("GetDepartmentForCompany", func() {
		It("finds a department in its own company", func() {
			d, err := repo.GetDepartmentForCompany(engineering.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).NotTo(BeNil())
			Expect(d.Name).To(Equal("Engineering"))
		})

		It("returns nil for another company's department", func() {
			d, err := repo.GetDepartmentForCompany(sales.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(BeNil())
		})
	})

	Describe("DepartmentNameByID", func() {
		It("returns the name when the row exists", func() {
			name, err := repo.DepartmentNameByID(engineering.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).NotTo(BeNil())
			Expect(*name).To(Equal("Engineering"))
		})

		It("returns nil for a missing department", func() {
			name, err := repo.DepartmentNameByID(999)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(BeNil())
		})
	})

	Describe("Update", func() {
		It("persists changed fields", func() {
			created := newEmployee("jane@acme.example", 1, engineering.ID)
			Expect(repo.Create(created)).To(Succeed())

			created.Salary = 92000
			created.JobTitle = "Senior Engineer"
			Expect(repo.Update(created)).To(Succeed())

			found, err := repo.GetByIDForCompany(created.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Salary).To(Equal(92000.0))
			Expect(found.JobTitle).To(Equal("Senior Engineer"))
		})
	})

	Describe("Delete", func() {
		It("removes the row", func() {
			created := newEmployee("jane@acme.example", 1, engineering.ID)
			Expect(repo.Create(created)).To(Succeed())

			Expect(repo.Delete(created)).To(Succeed())

			found, err := repo.GetByIDForCompany(created.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})
})
