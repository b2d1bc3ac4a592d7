package dto

import "time"

// CreateMaintenanceRequest payload for a new maintenance request.
type CreateMaintenanceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	ImageURLs   []string `json:"image_urls"`
}

// UpdateMaintenanceStatusRequest payload for landlord status changes.
type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status"`
}

// MaintenanceResponse is the public shape of a maintenance request.
type MaintenanceResponse struct {
	ID          string    `json:"id"`
	UnitID      string    `json:"unit_id"`
	TenantID    string    `json:"tenant_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
