package models

import (
	"time"
)

type SenderType string

const (
	SenderCustomer SenderType = "customer"
	SenderProvider SenderType = "provider"
)

// Chat links exactly one customer and one provider; the composite unique
// index keeps get-or-create idempotent even under concurrent requests.
type Chat struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	CustomerID        uint            `json:"customer_id" gorm:"uniqueIndex:idx_chat_pair"`
	Customer          Customer        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceProviderID uint            `json:"service_provider_id" gorm:"uniqueIndex:idx_chat_pair"`
	ServiceProvider   ServiceProvider `json:"service_provider,omitempty" gorm:"foreignKey:ServiceProviderID"`
	LastMessageID     *uint           `json:"last_message_id"`
	LastMessage       *Message        `json:"last_message,omitempty" gorm:"foreignKey:LastMessageID"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Message is immutable once created; rows are removed only when the
// owning chat is deleted.
type Message struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SenderID   uint       `json:"sender_id"`
	SenderType SenderType `json:"sender_type"`
	ChatID     uint       `json:"chat_id"`
	Text       string     `json:"text"`
	Image      string     `json:"image"`
	File       string     `json:"file"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
