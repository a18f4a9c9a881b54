package models

import "time"

// Checkout session states reported by /api/payments/status/:id.
const (
	CheckoutPending = "pending"
	CheckoutPaid    = "paid"
	CheckoutFailed  = "failed"
)

// CheckoutSession tracks one payment attempt against the external provider.
// ID doubles as the reference sent to the provider.
type CheckoutSession struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserEmail   string    `gorm:"index;not null" json:"user_email"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	Currency    string    `gorm:"not null" json:"currency"`
	Status      string    `gorm:"default:'pending';not null" json:"status"`
	ProviderURL string    `json:"provider_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CheckoutSession) TableName() string {
	return "checkout_sessions"
}
