package models

import "gorm.io/gorm"

// Certification is a single certification record.
type Certification struct {
	ID     string `json:"id" gorm:"type:char(24);primaryKey"`
	Name   string `json:"name" gorm:"type:text;not null"`
	Issuer string `json:"issuer" gorm:"type:text;not null"`
	Year   string `json:"year" gorm:"type:text;not null"`
}

func (c *Certification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}
