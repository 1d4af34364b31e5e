package models

import "time"

// Payment status values. The transition is one-way: a record moves
// from created to paid exactly once and never back.
const (
	PaymentStatusCreated = "created"
	PaymentStatusPaid    = "paid"
)

// PaymentRecord is the stored representation of one payment attempt.
// ID is our internal identifier; OrderID is the id Razorpay assigned
// to the gateway order. GatewayPaymentID is only set after a
// confirmation passed signature verification.
type PaymentRecord struct {
	ID               string     `json:"id"`
	OrderID          string     `json:"orderId"`
	Amount           float64    `json:"amount"`
	Currency         string     `json:"currency"`
	ProviderID       string     `json:"providerId,omitempty"`
	Status           string     `json:"status"`
	GatewayPaymentID string     `json:"gatewayPaymentId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// IsPaid reports whether the record already passed verification.
func (p *PaymentRecord) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}
