package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/repository"
	apperrors "github.com/spec-kit/landlordly/pkg/util"
)

// PropertyService manages properties and their units.
type PropertyService struct {
	properties repository.PropertyRepository
	units      repository.UnitRepository
	users      repository.UserRepository
}

// PropertyDependencies encapsulates repositories for property management.
type PropertyDependencies struct {
	PropertyRepo repository.PropertyRepository
	UnitRepo     repository.UnitRepository
	UserRepo     repository.UserRepository
}

// UnitUpdateInput carries optional unit changes.
type UnitUpdateInput struct {
	UnitNumber *string
	RentAmount *float64
	TenantID   *string
	Status     *domain.UnitStatus
	LeaseStart *time.Time
	LeaseEnd   *time.Time
}

// NewPropertyService constructs the service.
func NewPropertyService(deps PropertyDependencies) *PropertyService {
	return &PropertyService{
		properties: deps.PropertyRepo,
		units:      deps.UnitRepo,
		users:      deps.UserRepo,
	}
}

// CreateProperty adds a property for the landlord.
func (s *PropertyService) CreateProperty(ctx context.Context, landlordID, name, address string, imageURL *string) (*domain.Property, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" || address == "" {
		return nil, apperrors.NewValidationError("name and address required", nil)
	}
	property := &domain.Property{
		LandlordID: landlordID,
		Name:       name,
		Address:    address,
		ImageURL:   imageURL,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, apperrors.MapError(err)
	}
	return property, nil
}

// ListProperties returns all of the landlord's properties.
func (s *PropertyService) ListProperties(ctx context.Context, landlordID string) ([]domain.Property, error) {
	return s.properties.ListByLandlord(ctx, landlordID)
}

// DeleteProperty removes a property and all of its units.
func (s *PropertyService) DeleteProperty(ctx context.Context, landlordID, propertyID string) error {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if property.LandlordID != landlordID {
		return apperrors.NewForbidden("property belongs to another landlord")
	}
	if err := s.units.DeleteByProperty(ctx, propertyID); err != nil {
		return apperrors.MapError(err)
	}
	return apperrors.MapError(s.properties.Delete(ctx, propertyID))
}

// AddUnit creates a unit within a landlord's property.
func (s *PropertyService) AddUnit(ctx context.Context, landlordID, propertyID, unitNumber string, rentAmount float64) (*domain.Unit, error) {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if property.LandlordID != landlordID {
		return nil, apperrors.NewForbidden("property belongs to another landlord")
	}
	if strings.TrimSpace(unitNumber) == "" {
		return nil, apperrors.NewValidationError("unit number required", nil)
	}
	if rentAmount <= 0 {
		return nil, apperrors.NewValidationError("rent amount must be positive", nil)
	}

	unit := &domain.Unit{
		PropertyID: propertyID,
		UnitNumber: strings.TrimSpace(unitNumber),
		RentAmount: rentAmount,
		Status:     domain.UnitStatusVacant,
	}
	if err := s.units.Create(ctx, unit); err != nil {
		return nil, apperrors.MapError(err)
	}
	return unit, nil
}

// ListUnits returns units of a landlord's property.
func (s *PropertyService) ListUnits(ctx context.Context, landlordID, propertyID string) ([]domain.Unit, error) {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if property.LandlordID != landlordID {
		return nil, apperrors.NewForbidden("property belongs to another landlord")
	}
	return s.units.ListByProperty(ctx, propertyID)
}

// UpdateUnit applies partial changes, including tenant assignment. Assigning
// a tenant flips the unit to occupied; clearing the tenant flips it back to
// vacant unless a status is set explicitly.
func (s *PropertyService) UpdateUnit(ctx context.Context, landlordID, unitID string, input UnitUpdateInput) (*domain.Unit, error) {
	unit, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	property, err := s.properties.GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if property.LandlordID != landlordID {
		return nil, apperrors.NewForbidden("unit belongs to another landlord")
	}

	if input.UnitNumber != nil {
		unit.UnitNumber = strings.TrimSpace(*input.UnitNumber)
	}
	if input.RentAmount != nil {
		if *input.RentAmount <= 0 {
			return nil, apperrors.NewValidationError("rent amount must be positive", nil)
		}
		unit.RentAmount = *input.RentAmount
	}
	if input.TenantID != nil {
		if *input.TenantID == "" {
			unit.TenantID = nil
			unit.Status = domain.UnitStatusVacant
		} else {
			tenant, err := s.users.GetByID(ctx, *input.TenantID)
			if err != nil {
				return nil, apperrors.MapError(err)
			}
			if tenant.Role != domain.RoleTenant {
				return nil, apperrors.NewValidationError("assignee is not a tenant", map[string]any{"user_id": tenant.ID})
			}
			unit.TenantID = input.TenantID
			unit.Status = domain.UnitStatusOccupied
		}
	}
	if input.Status != nil {
		unit.Status = *input.Status
	}
	if input.LeaseStart != nil {
		unit.LeaseStart = input.LeaseStart
	}
	if input.LeaseEnd != nil {
		unit.LeaseEnd = input.LeaseEnd
	}

	if err := s.units.Update(ctx, unit); err != nil {
		return nil, apperrors.MapError(err)
	}
	return unit, nil
}

// GetTenantUnit returns the unit currently leased by the tenant.
func (s *PropertyService) GetTenantUnit(ctx context.Context, tenantID string) (*domain.Unit, error) {
	unit, err := s.units.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return unit, nil
}
