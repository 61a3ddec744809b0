package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/hr-management/internal/auth"
	companyDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/company"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetUserByUsername(username string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetUserByID(userID int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) UsernameOrEmailTaken(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) GetCompanyByName(name string) (*companyDatamodel.Company, error) {
	var c companyDatamodel.Company
	err := r.db.Where("name = ?", name).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateCompany(c *companyDatamodel.Company) error {
	return r.db.Create(c).Error
}

func (r *Repository) GetCompanyName(companyID int64) (string, error) {
	var name string
	row := r.db.Raw(`SELECT name FROM companies WHERE id = ?`, companyID).Row()
	if err := row.Scan(&name); err != nil {
		return "", err
	}
	return name, nil
}

func (r *Repository) CreateUser(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}
