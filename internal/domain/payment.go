package domain

import "time"

// PaymentCredentials represents a tutor's payment-provider application.
// PaymentID holds the id of the last executed payment and guards against
// double execution of the same payment.
type PaymentCredentials struct {
	ID           int64
	TutorEmail   string
	ClientID     string
	ClientSecret string
	PaymentID    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted returns true if the given payment id has already been executed
// against these credentials
func (c *PaymentCredentials) IsCompleted(paymentID string) bool {
	return c.PaymentID != nil && *c.PaymentID == paymentID
}

// PurchaseInfo is the structured metadata attached to a payment.
// It travels to the provider on creation and is read back on execution,
// so the credited student and quantity never depend on free-text parsing.
type PurchaseInfo struct {
	Quantity     int    `json:"quantity"`
	StudentEmail string `json:"studentEmail"`
}
