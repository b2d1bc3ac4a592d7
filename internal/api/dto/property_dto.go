package dto

import "time"

// CreatePropertyRequest payload for a new property.
type CreatePropertyRequest struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	ImageURL *string `json:"image_url"`
}

// PropertyResponse is the public shape of a property.
type PropertyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUnitRequest payload for a new unit.
type CreateUnitRequest struct {
	UnitNumber string  `json:"unit_number"`
	RentAmount float64 `json:"rent_amount"`
}

// UpdateUnitRequest carries optional unit changes. An empty tenant_id string
// clears the current tenant.
type UpdateUnitRequest struct {
	UnitNumber *string    `json:"unit_number"`
	RentAmount *float64   `json:"rent_amount"`
	TenantID   *string    `json:"tenant_id"`
	Status     *string    `json:"status"`
	LeaseStart *time.Time `json:"lease_start"`
	LeaseEnd   *time.Time `json:"lease_end"`
}

// UnitResponse is the public shape of a unit.
type UnitResponse struct {
	ID         string     `json:"id"`
	PropertyID string     `json:"property_id"`
	UnitNumber string     `json:"unit_number"`
	RentAmount float64    `json:"rent_amount"`
	Status     string     `json:"status"`
	TenantID   *string    `json:"tenant_id,omitempty"`
	LeaseStart *time.Time `json:"lease_start,omitempty"`
	LeaseEnd   *time.Time `json:"lease_end,omitempty"`
}
