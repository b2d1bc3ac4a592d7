package dto

import "time"

// CreateNoticeRequest payload for a landlord notice.
type CreateNoticeRequest struct {
	Type    string `json:"type"`
	UnitID  string `json:"unit_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoticeResponse is the public shape of a notice.
type NoticeResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	UnitID       string    `json:"unit_id"`
	TenantID     string    `json:"tenant_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	SentAt       time.Time `json:"sent_at"`
	Acknowledged bool      `json:"acknowledged"`
}
