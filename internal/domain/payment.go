package domain

import "time"

// PaymentStatus enumerates rent payment states.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusLate      PaymentStatus = "late"
)

// Payment records a rent payment against a unit.
type Payment struct {
	ID         string
	TenantID   string
	UnitID     string
	Amount     float64
	Status     PaymentStatus
	DueDate    time.Time
	PaidDate   *time.Time
	LateFee    *float64
	ReceiptURL *string
	CreatedAt  time.Time
}
