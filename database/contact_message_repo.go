package database

import (
	"errors"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// FindPage returns one page of messages, newest first, plus the total count.
func (r *ContactMessageRepo) FindPage(page, limit int) ([]*models.ContactMessage, int64, error) {
	var total int64
	if err := r.db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*models.ContactMessage
	err := r.db.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	return messages, total, err
}

// FindByID returns a message by its ID, or nil if no record matches
func (r *ContactMessageRepo) FindByID(id string) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.Where("id = ?", id).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// SetRead updates the read flag of the message with the given id. Repeating
// the same update is a no-op.
func (r *ContactMessageRepo) SetRead(id string, read bool) error {
	return r.db.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", read).Error
}

// Delete removes a message from the database by id
func (r *ContactMessageRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.ContactMessage{}).Error
}

// CountUnread returns the number of unread messages
func (r *ContactMessageRepo) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
