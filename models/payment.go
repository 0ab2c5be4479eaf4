package models

import "time"

// PaymentRequest asks the payment handler to capture funds.
type PaymentRequest struct {
	UserID          string  `json:"userId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	PaymentMethodID string  `json:"paymentMethodId"`
	Description     string  `json:"description,omitempty"`
}

// Invoice records the outcome of a capture attempt.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Status    string    `bson:"status" json:"status"` // "paid" or "pending"
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
