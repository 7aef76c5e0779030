package models

import (
	"time"
)

type ServiceCategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SubService struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ParentServiceID uint            `json:"parent_service_id"`
	ParentService   ServiceCategory `json:"parent_service,omitempty" gorm:"foreignKey:ParentServiceID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
