package domain

import "time"

// NoticeType enumerates formal notice categories.
type NoticeType string

const (
	NoticeTypeThreeDay  NoticeType = "3-day"
	NoticeTypeSevenDay  NoticeType = "7-day"
	NoticeTypeThirtyDay NoticeType = "30-day"
	NoticeTypeCustom    NoticeType = "custom"
)

// Notice is a formal landlord-to-tenant communication tied to a unit.
type Notice struct {
	ID           string
	Type         NoticeType
	TenantID     string
	UnitID       string
	Title        string
	Content      string
	SentAt       time.Time
	Acknowledged bool
}
