package domain

import "time"

// UserRole distinguishes tenants from landlords.
type UserRole string

const (
	RoleTenant   UserRole = "tenant"
	RoleLandlord UserRole = "landlord"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleTenant || r == RoleLandlord
}

// User is the account record for both tenants and landlords.
type User struct {
	ID               string
	Email            string
	Name             string
	Phone            *string
	Role             UserRole
	AvatarURL        *string
	PasswordHash     string
	TwoFactorEnabled bool
	TOTPSecret       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
