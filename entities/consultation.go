package entities

import (
	"github.com/google/uuid"
)

type Consultation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Remarks    string    `gorm:"type:text" json:"remarks"`
	AIResponse string    `gorm:"type:text" json:"ai_response"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type TokenPurchase struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Amount          float64   `json:"amount"`
	Tokens          int       `json:"tokens"`
	Status          string    `gorm:"size:20" json:"status"` // pending, completed, failed
	PaymentIntentID string    `json:"payment_intent_id"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
