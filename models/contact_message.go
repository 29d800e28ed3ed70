package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	ID        string    `json:"id" gorm:"type:char(24);primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"isRead" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}
