package database

import (
	"errors"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindPage returns one page of skills, newest first, plus the total count.
func (r *SkillRepo) FindPage(page, limit int) ([]*models.Skill, int64, error) {
	var total int64
	if err := r.db.Model(&models.Skill{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []*models.Skill
	err := r.db.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&skills).Error
	return skills, total, err
}

// FindByID returns a skill by its ID, or nil if no record matches
func (r *SkillRepo) FindByID(id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("id = ?", id).First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindByName returns the skill whose name matches case-insensitively, or nil.
func (r *SkillRepo) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindDuplicateName returns a skill other than excludeID whose name matches
// case-insensitively, or nil. Used for the pre-insert uniqueness check; the
// unique index on name is the case-sensitive backstop.
func (r *SkillRepo) FindDuplicateName(name, excludeID string) (*models.Skill, error) {
	query := r.db.Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var skill models.Skill
	err := query.First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// UpdateFields applies a partial update to the skill with the given id.
func (r *SkillRepo) UpdateFields(id string, fields map[string]any) error {
	return r.db.Model(&models.Skill{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Skill{}).Error
}

// Count returns the total number of skills
func (r *SkillRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Count(&count).Error
	return count, err
}
