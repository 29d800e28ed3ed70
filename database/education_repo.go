package database

import (
	"errors"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"gorm.io/gorm"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

// education listings accept a client-supplied sort key; anything outside this
// set falls back to newest year first
var educationSortColumns = map[string]string{
	"degree":       "degree asc",
	"-degree":      "degree desc",
	"institution":  "institution asc",
	"-institution": "institution desc",
	"year":         "year asc",
	"-year":        "year desc",
}

// FindAll returns education records, optionally filtered by a
// case-insensitive substring search over degree and institution.
func (r *EducationRepo) FindAll(search, sort string) ([]*models.Education, error) {
	query := r.db.Session(&gorm.Session{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("degree ILIKE ? OR institution ILIKE ?", pattern, pattern)
	}

	order, ok := educationSortColumns[sort]
	if !ok {
		order = "year desc"
	}

	var records []*models.Education
	err := query.Order(order).Find(&records).Error
	return records, err
}

// FindByID returns an education record by its ID, or nil if no record matches
func (r *EducationRepo) FindByID(id string) (*models.Education, error) {
	var record models.Education
	err := r.db.Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Add inserts a new education record into the database
func (r *EducationRepo) Add(record *models.Education) error {
	return r.db.Create(record).Error
}

// UpdateFields applies a partial update to the education record with the given id.
func (r *EducationRepo) UpdateFields(id string, fields map[string]any) error {
	return r.db.Model(&models.Education{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes an education record from the database by id
func (r *EducationRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Education{}).Error
}
