package database

import (
	"errors"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"gorm.io/gorm"
)

type CertificationRepo struct {
	db *gorm.DB
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db}
}

// FindAll returns all certifications, newest year first.
func (r *CertificationRepo) FindAll() ([]*models.Certification, error) {
	var certs []*models.Certification
	err := r.db.Order("year desc").Find(&certs).Error
	return certs, err
}

// FindByID returns a certification by its ID, or nil if no record matches
func (r *CertificationRepo) FindByID(id string) (*models.Certification, error) {
	var cert models.Certification
	err := r.db.Where("id = ?", id).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// Add inserts a new certification into the database
func (r *CertificationRepo) Add(cert *models.Certification) error {
	return r.db.Create(cert).Error
}

// UpdateFields applies a partial update to the certification with the given id.
func (r *CertificationRepo) UpdateFields(id string, fields map[string]any) error {
	return r.db.Model(&models.Certification{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a certification from the database by id
func (r *CertificationRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Certification{}).Error
}
