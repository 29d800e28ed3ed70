package database

import (
	"errors"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"gorm.io/gorm"
)

type AdminAccountRepo struct {
	db *gorm.DB
}

func NewAdminAccountRepo(db *gorm.DB) *AdminAccountRepo {
	return &AdminAccountRepo{db}
}

// Get returns the singleton admin account. The record is read from the store
// on every call so password and profile changes are immediately visible.
func (r *AdminAccountRepo) Get() (*models.AdminAccount, error) {
	var account models.AdminAccount
	err := r.db.Order("created_at asc").First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail returns the account matching email, case-insensitively.
func (r *AdminAccountRepo) FindByEmail(email string) (*models.AdminAccount, error) {
	var account models.AdminAccount
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Add inserts the admin account into the database
func (r *AdminAccountRepo) Add(account *models.AdminAccount) error {
	return r.db.Create(account).Error
}

// Update updates the admin account in the database
func (r *AdminAccountRepo) Update(account *models.AdminAccount) error {
	return r.db.Save(account).Error
}

// Count returns the number of admin accounts
func (r *AdminAccountRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminAccount{}).Count(&count).Error
	return count, err
}
