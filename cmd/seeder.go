package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal/auth"
	companyDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/company"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm connection: %v", err)
		}

		if clearData {
			for _, table := range []string{"employees", "departments", "users", "companies"} {
				if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		company := companyDatamodel.Company{Name: "Acme"}
		if err := db.Where("name = ?", company.Name).FirstOrCreate(&company).Error; err != nil {
			log.Fatalf("failed to seed company: %v", err)
		}

		hash, err := auth.HashPassword("password", cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		user := userDatamodel.User{
			Username:     "alice",
			Email:        "alice@acme.example",
			PasswordHash: hash,
			CompanyID:    company.ID,
		}
		if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
		fmt.Println("Seeded HR user:", user.Username)

		departments := []departmentDatamodel.Department{
			{Name: "Engineering", CompanyID: company.ID},
			{Name: "Sales", CompanyID: company.ID},
		}
		for i := range departments {
			if err := db.Where("name = ? AND company_id = ?", departments[i].Name, company.ID).
				FirstOrCreate(&departments[i]).Error; err != nil {
				log.Fatalf("failed to seed department: %v", err)
			}
		}

		employees := []employeeDatamodel.Employee{
			{Name: "Bob", Email: "bob@acme.example", JobTitle: "Dev", Salary: 90000, JoinDate: "2024-01-01", DepartmentID: departments[0].ID, CompanyID: company.ID},
			{Name: "Dana", Email: "dana@acme.example", JobTitle: "Dev", Salary: 98000, JoinDate: "2023-06-15", DepartmentID: departments[0].ID, CompanyID: company.ID},
			{Name: "Eve", Email: "eve@acme.example", JobTitle: "AE", Salary: 70000, JoinDate: "2024-03-20", DepartmentID: departments[1].ID, CompanyID: company.ID},
		}
		for i := range employees {
			if err := db.Where("email = ?", employees[i].Email).FirstOrCreate(&employees[i]).Error; err != nil {
				log.Fatalf("failed to seed employee: %v", err)
			}
		}
		fmt.Println("Seeded departments and employees for company:", company.Name)
	},
}
