package models

import (
	"time"
)

type ServiceProvider struct {
	ID                 uint              `json:"id" gorm:"primaryKey"`
	Name               string            `json:"name"`
	Email              string            `json:"email" gorm:"uniqueIndex"`
	Phone              string            `json:"phone" gorm:"uniqueIndex"`
	Password           string            `json:"-"`
	ProfileImage       string            `json:"profile_image"`
	ServiceTypes       []ServiceCategory `json:"service_types,omitempty" gorm:"many2many:provider_service_types;"`
	SubServices        []SubService      `json:"sub_services,omitempty" gorm:"many2many:provider_sub_services;"`
	Experience         int               `json:"experience"`
	PreviousWorkImages StringList        `json:"previous_work_images" gorm:"type:text"`
	Certifications     StringList        `json:"certifications" gorm:"type:text"`
	CNICNumber         string            `json:"cnic_number" gorm:"column:cnic_number;uniqueIndex"`
	CNICImages         StringList        `json:"cnic_images" gorm:"column:cnic_images;type:text"`
	SelfieImage        string            `json:"selfie_image"`
	IsVerified         bool              `json:"is_verified" gorm:"default:false"`
	IsApproved         bool              `json:"is_approved" gorm:"default:false"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
