package models

import (
	"time"
)

type Background struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Filename  string    `gorm:"not null;size:255" json:"filename"` // original upload name
	Path      string    `gorm:"not null" json:"path"`              // server-generated stored path
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
}
