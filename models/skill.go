package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillItem is a single named entry within a skill category.
type SkillItem struct {
	Name string `json:"name"`
}

// Skill is a named skill category. Name uniqueness is enforced
// case-sensitively by the unique index; service logic performs a
// case-insensitive duplicate check before insert.
type Skill struct {
	ID        string                         `json:"id" gorm:"type:char(24);primaryKey"`
	Name      string                         `json:"name" gorm:"type:text;not null;unique"`
	Icon      string                         `json:"icon" gorm:"type:text;not null"`
	Color     string                         `json:"color" gorm:"type:text;not null"`
	Items     datatypes.JSONSlice[SkillItem] `json:"items"`
	CreatedAt time.Time                      `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time                      `json:"updatedAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}
