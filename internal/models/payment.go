package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records one checkout attempt. The idempotency key is persisted so a
// retried submission after a crash reuses the same key instead of re-charging.
type Payment struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	UserID            uint          `gorm:"not null;index" json:"user_id"`
	IdempotencyKey    string        `gorm:"uniqueIndex;not null" json:"idempotency_key"`
	Amount            int64         `gorm:"not null" json:"amount"`
	Currency          string        `gorm:"not null" json:"currency"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	Status            PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
