package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Education is a single education record.
type Education struct {
	ID           string                      `json:"id" gorm:"type:char(24);primaryKey"`
	Degree       string                      `json:"degree" gorm:"type:text;not null"`
	Institution  string                      `json:"institution" gorm:"type:text;not null"`
	Year         string                      `json:"year" gorm:"type:text;not null"`
	Achievements datatypes.JSONSlice[string] `json:"achievements"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = NewID()
	}
	return nil
}
