package dto

import "time"

// MakePaymentRequest payload for a tenant payment. A zero amount pays the
// full rent of the leased unit.
type MakePaymentRequest struct {
	Amount  float64    `json:"amount"`
	DueDate *time.Time `json:"due_date"`
}

// UpdatePaymentStatusRequest payload for landlord status changes.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

// PaymentResponse is the public shape of a payment.
type PaymentResponse struct {
	ID         string     `json:"id"`
	UnitID     string     `json:"unit_id"`
	TenantID   string     `json:"tenant_id"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	DueDate    time.Time  `json:"due_date"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`
	LateFee    *float64   `json:"late_fee,omitempty"`
	ReceiptURL *string    `json:"receipt_url,omitempty"`
}
