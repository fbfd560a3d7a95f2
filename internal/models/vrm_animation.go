package models

import (
	"time"
)

type VRMAnimation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AnimName  string    `gorm:"column:anim_name;not null;size:255" json:"anim_name"`
	VRMAPath  string    `gorm:"column:vrma_path;not null" json:"vrma_path"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ModelID   uint      `gorm:"not null;index" json:"model_id"`
}

func (VRMAnimation) TableName() string {
	return "vrm_animations"
}
