package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	ServiceRequestID  uint            `json:"service_request_id" gorm:"uniqueIndex:idx_review_request_customer"`
	ServiceRequest    ServiceRequest  `json:"service_request,omitempty" gorm:"foreignKey:ServiceRequestID"`
	CustomerID        uint            `json:"customer_id" gorm:"uniqueIndex:idx_review_request_customer"`
	Customer          Customer        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceProviderID uint            `json:"service_provider_id"`
	ServiceProvider   ServiceProvider `json:"service_provider,omitempty" gorm:"foreignKey:ServiceProviderID"`
	Rating            int             `json:"rating" gorm:"not null"`
	Review            string          `json:"review"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// HasExistingReview checks whether the customer already reviewed this service request.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("service_request_id = ? AND customer_id = ?", r.ServiceRequestID, r.CustomerID).
		Count(&count).Error

	return count > 0, err
}
