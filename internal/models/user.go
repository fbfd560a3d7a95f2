package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null;size:255" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Models      []VRMModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"vrm_models,omitempty"`
	Animations  []VRMAnimation `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Backgrounds []Background   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
