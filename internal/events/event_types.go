package events

import (
	"time"

	"github.com/spec-kit/landlordly/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInviteIssued             EventType = "invite_issued"
	EventInviteRedeemed           EventType = "invite_redeemed"
	EventUserRegistered           EventType = "user_registered"
	EventPaymentRecorded          EventType = "payment_recorded"
	EventPaymentStatusChanged     EventType = "payment_status_changed"
	EventMaintenanceCreated       EventType = "maintenance_created"
	EventMaintenanceStatusChanged EventType = "maintenance_status_changed"
	EventMessageSent              EventType = "message_sent"
	EventNoticeSent               EventType = "notice_sent"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// InviteIssuedPayload payload.
type InviteIssuedPayload struct {
	Code string `json:"code"`
	Link string `json:"link"`
}

// InviteRedeemedPayload payload.
type InviteRedeemedPayload struct {
	Code string `json:"code"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID string               `json:"payment_id"`
	UnitID    string               `json:"unit_id"`
	Amount    float64              `json:"amount"`
	Status    domain.PaymentStatus `json:"status"`
}

// PaymentStatusChangedPayload payload.
type PaymentStatusChangedPayload struct {
	PaymentID string               `json:"payment_id"`
	OldStatus domain.PaymentStatus `json:"old_status"`
	NewStatus domain.PaymentStatus `json:"new_status"`
}

// MaintenanceCreatedPayload payload.
type MaintenanceCreatedPayload struct {
	RequestID string                     `json:"request_id"`
	UnitID    string                     `json:"unit_id"`
	Priority  domain.MaintenancePriority `json:"priority"`
	Title     string                     `json:"title"`
}

// MaintenanceStatusChangedPayload payload.
type MaintenanceStatusChangedPayload struct {
	RequestID string                   `json:"request_id"`
	OldStatus domain.MaintenanceStatus `json:"old_status"`
	NewStatus domain.MaintenanceStatus `json:"new_status"`
}

// MessageSentPayload payload.
type MessageSentPayload struct {
	MessageID     string `json:"message_id"`
	ReceiverID    string `json:"receiver_id"`
	FromAssistant bool   `json:"from_assistant"`
	BodyPreview   string `json:"body_preview"`
}

// NoticeSentPayload payload.
type NoticeSentPayload struct {
	NoticeID string            `json:"notice_id"`
	TenantID string            `json:"tenant_id"`
	Type     domain.NoticeType `json:"type"`
}
