package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a completed card charge. IntentID is the opaque handle
// issued by the payment processor; Amount is in minor currency units.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"size:255;not null;index" json:"email"`
	Amount        int64     `gorm:"not null" json:"amount"`
	Currency      string    `gorm:"size:10;default:'usd'" json:"currency"`
	IntentID      string    `gorm:"size:255" json:"intentId"`
	ScholarshipID uuid.UUID `gorm:"type:uuid" json:"scholarshipId"`
	CreatedAt     time.Time `json:"created_at"`
}
