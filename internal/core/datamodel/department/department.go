package department

import "time"

// Department names are deliberately not unique across the system: two
// companies may both have an "Engineering". Uniqueness, if any, is a
// per-tenant concern the API does not enforce.
type Department struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	CompanyID int64     `gorm:"column:company_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Department) TableName() string {
	return "departments"
}
