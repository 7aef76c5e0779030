package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusCompleted RequestStatus = "completed"
	StatusCancelled RequestStatus = "cancelled"
)

// ValidStatus reports whether s is one of the four request statuses.
func ValidStatus(s RequestStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type ServiceRequest struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	CustomerID        uint            `json:"customer_id"`
	Customer          Customer        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceProviderID uint            `json:"service_provider_id"`
	ServiceProvider   ServiceProvider `json:"service_provider,omitempty" gorm:"foreignKey:ServiceProviderID"`
	ServiceCategoryID uint            `json:"service_category_id"`
	ServiceCategory   ServiceCategory `json:"service_category,omitempty" gorm:"foreignKey:ServiceCategoryID"`
	SubServiceID      *uint           `json:"sub_service_id"`
	SubService        *SubService     `json:"sub_service,omitempty" gorm:"foreignKey:SubServiceID"`
	Status            RequestStatus   `json:"status"`
	ScheduledTime     *time.Time      `json:"scheduled_time"`
	CustomerNotes     string          `json:"customer_notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (r *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}

// UpdateStatus moves the request to newStatus if the transition is allowed
// and persists the change. Completed and cancelled are terminal.
func (r *ServiceRequest) UpdateStatus(tx *gorm.DB, newStatus RequestStatus) error {
	switch r.Status {
	case StatusPending:
		if newStatus != StatusAccepted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusAccepted:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from accepted to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", r.Status)
	}

	r.Status = newStatus
	return tx.Save(r).Error
}
