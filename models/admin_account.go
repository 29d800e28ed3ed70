package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminAccount is the single privileged account for this deployment. The
// password hash is never serialized into a response.
type AdminAccount struct {
	ID        string    `json:"id" gorm:"type:char(24);primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	Avatar    string    `json:"avatar,omitempty" gorm:"type:text"`
	AvatarKey string    `json:"-" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (a *AdminAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}
