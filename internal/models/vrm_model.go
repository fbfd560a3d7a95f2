package models

import (
	"time"
)

type VRMModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	VRMPath   string    `gorm:"column:vrm_path;not null" json:"vrm_path"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`

	Animations []VRMAnimation `gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE" json:"animations"`
}

// TableName keeps the table name used by the frontend API contract.
func (VRMModel) TableName() string {
	return "vrm_models"
}
