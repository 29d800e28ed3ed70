package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project represents a portfolio project. Category is a non-owning reference
// to the Skill acting as the project's classification tag.
type Project struct {
	ID           string                      `json:"id" gorm:"type:char(24);primaryKey"`
	Title        string                      `json:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" gorm:"type:text;not null"`
	Image        string                      `json:"image,omitempty" gorm:"type:text"`
	GithubLink   string                      `json:"githubLink" gorm:"type:text;not null"`
	LiveLink     string                      `json:"liveLink" gorm:"type:text;not null"`
	CategoryID   string                      `json:"categoryId" gorm:"type:char(24);not null;index"`
	Category     *Skill                      `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" gorm:"not null"`
	IsFeatured   bool                        `json:"isFeatured" gorm:"not null;default:false"`
	IsArchived   bool                        `json:"isArchived" gorm:"not null;default:false"`
	CreatedAt    time.Time                   `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                   `json:"updatedAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
