package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is an append-only record of a completed payment. Rows are never
// updated or deleted.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"type:varchar(100);index;not null" json:"email"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Currency      string    `gorm:"type:varchar(10);not null" json:"currency"`
	ContestID     string    `gorm:"type:varchar(64)" json:"contestId"`
	TransactionID string    `gorm:"type:varchar(128)" json:"transactionId"`
	CreatedAt     time.Time `json:"created_at"`
}
