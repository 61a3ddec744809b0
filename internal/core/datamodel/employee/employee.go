package employee

import "time"

// Employee rows always carry the owning company id alongside the
// department foreign key; the department must belong to the same company.
// JoinDate stays a plain string, the API treats it as an opaque date label.
type Employee struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	JobTitle     string    `gorm:"column:job_title;not null"`
	Salary       float64   `gorm:"column:salary;not null"`
	JoinDate     string    `gorm:"column:join_date;not null"`
	DepartmentID int64     `gorm:"column:department_id;not null;index"`
	CompanyID    int64     `gorm:"column:company_id;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
