package domain

import "time"

// Property is a building or complex owned by a landlord.
type Property struct {
	ID         string
	LandlordID string
	Name       string
	Address    string
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UnitStatus enumerates occupancy states.
type UnitStatus string

const (
	UnitStatusVacant   UnitStatus = "vacant"
	UnitStatusOccupied UnitStatus = "occupied"
)

// Unit is a rentable unit within a property.
type Unit struct {
	ID         string
	PropertyID string
	UnitNumber string
	RentAmount float64
	TenantID   *string
	Status     UnitStatus
	LeaseStart *time.Time
	LeaseEnd   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
