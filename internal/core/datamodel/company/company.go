package company

import "time"

// Company is the tenancy root: every user, department and employee hangs
// off exactly one company.
type Company struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Company) TableName() string {
	return "companies"
}
