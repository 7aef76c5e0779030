package models

import (
	"time"
)

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleModerator  AdminRole = "moderator"
)

type Admin struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name"`
	Email       string     `json:"email" gorm:"uniqueIndex"`
	Password    string     `json:"-"`
	Role        AdminRole  `json:"role" gorm:"default:moderator"`
	Permissions StringList `json:"permissions" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
