package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber marks a newsletter opt-in. No unique index on email: duplicate
// subscriptions have never been rejected and remain allowed.
type Subscriber struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
