package database

import (
	"errors"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter narrows a project listing. Zero values mean "no filter".
type ProjectFilter struct {
	Archived   *bool
	CategoryID string
	Search     string
}

// FindAll returns projects matching filter, newest first, with the category
// skill populated.
func (r *ProjectRepo) FindAll(filter ProjectFilter) ([]*models.Project, error) {
	query := r.db.Preload("Category")

	if filter.Archived != nil {
		query = query.Where("is_archived = ?", *filter.Archived)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var projects []*models.Project
	err := query.Order("created_at desc").Find(&projects).Error
	return projects, err
}

// FindFeatured returns all featured projects, newest first.
func (r *ProjectRepo) FindFeatured() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").
		Where("is_featured = ?", true).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil if no record matches
func (r *ProjectRepo) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Category").Where("id = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// UpdateFields applies a partial update to the project with the given id.
func (r *ProjectRepo) UpdateFields(id string, fields map[string]any) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Project{}).Error
}

// Count returns the total number of projects
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// FindRecent returns the limit most recent projects ordered by the given
// timestamp column ("created_at" or "updated_at").
func (r *ProjectRepo) FindRecent(orderColumn string, limit int) ([]*models.Project, error) {
	if orderColumn != "created_at" && orderColumn != "updated_at" {
		orderColumn = "created_at"
	}
	var projects []*models.Project
	err := r.db.Preload("Category").
		Order(orderColumn + " desc").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// CountByCategory returns project counts grouped by category skill name,
// largest group first.
func (r *ProjectRepo) CountByCategory() ([]models.CategoryCount, error) {
	var counts []models.CategoryCount
	err := r.db.Model(&models.Project{}).
		Select("skills.name AS name, COUNT(projects.id) AS value").
		Joins("JOIN skills ON skills.id = projects.category_id").
		Group("skills.name").
		Order("value desc").
		Scan(&counts).Error
	return counts, err
}
