package domain

import "time"

// MaintenancePriority enumerates urgency of a maintenance request.
type MaintenancePriority string

const (
	MaintenancePriorityLow       MaintenancePriority = "low"
	MaintenancePriorityMedium    MaintenancePriority = "medium"
	MaintenancePriorityHigh      MaintenancePriority = "high"
	MaintenancePriorityEmergency MaintenancePriority = "emergency"
)

// MaintenanceStatus enumerates lifecycle states for maintenance requests.
type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
)

// MaintenanceRequest is a tenant-filed repair request for their unit.
type MaintenanceRequest struct {
	ID          string
	TenantID    string
	UnitID      string
	Title       string
	Description string
	Priority    MaintenancePriority
	Status      MaintenanceStatus
	ImageURLs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
