package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/events"
	"github.com/spec-kit/landlordly/internal/repository"
	apperrors "github.com/spec-kit/landlordly/pkg/util"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// MaintenanceService coordinates maintenance request workflows.
type MaintenanceService struct {
	requests   repository.MaintenanceRepository
	units      repository.UnitRepository
	properties repository.PropertyRepository
	dispatcher events.Dispatcher
}

// MaintenanceDependencies bundles repositories for the service.
type MaintenanceDependencies struct {
	MaintenanceRepo repository.MaintenanceRepository
	UnitRepo        repository.UnitRepository
	PropertyRepo    repository.PropertyRepository
	Dispatcher      events.Dispatcher
}

// MaintenanceCreateInput describes a new request.
type MaintenanceCreateInput struct {
	Title       string
	Description string
	Priority    domain.MaintenancePriority
	ImageURLs   []string
}

// NewMaintenanceService constructs the service.
func NewMaintenanceService(deps MaintenanceDependencies) *MaintenanceService {
	return &MaintenanceService{
		requests:   deps.MaintenanceRepo,
		units:      deps.UnitRepo,
		properties: deps.PropertyRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Submit files a maintenance request against the tenant's leased unit.
func (s *MaintenanceService) Submit(ctx context.Context, tenantID string, input MaintenanceCreateInput) (*domain.MaintenanceRequest, error) {
	unit, err := s.units.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, ErrNoLeasedUnit
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}

	request := &domain.MaintenanceRequest{
		TenantID:    tenantID,
		UnitID:      unit.ID,
		Title:       title,
		Description: description,
		Priority:    input.Priority,
		Status:      domain.MaintenanceStatusOpen,
		ImageURLs:   input.ImageURLs,
	}
	if request.Priority == "" {
		request.Priority = domain.MaintenancePriorityMedium
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventMaintenanceCreated,
		ActorID: tenantID,
		Payload: events.MaintenanceCreatedPayload{
			RequestID: request.ID,
			UnitID:    request.UnitID,
			Priority:  request.Priority,
			Title:     request.Title,
		},
	})
	return request, nil
}

// ListForTenant returns the tenant's own requests.
func (s *MaintenanceService) ListForTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error) {
	return s.requests.ListByTenant(ctx, tenantID)
}

// ListForLandlord returns requests across all of the landlord's units.
func (s *MaintenanceService) ListForLandlord(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error) {
	return s.requests.ListByLandlord(ctx, landlordID)
}

// UpdateStatus moves a request along its lifecycle. Only forward transitions
// are allowed: open -> in_progress -> resolved, plus open -> resolved.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, landlordID, requestID string, newStatus domain.MaintenanceStatus) (*domain.MaintenanceRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	unit, err := s.units.GetByID(ctx, request.UnitID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	property, err := s.properties.GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if property.LandlordID != landlordID {
		return nil, apperrors.NewForbidden("request belongs to another landlord's unit")
	}

	if !isValidMaintenanceTransition(request.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	oldStatus := request.Status
	request.Status = newStatus
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventMaintenanceStatusChanged,
		ActorID: landlordID,
		Payload: events.MaintenanceStatusChangedPayload{
			RequestID: request.ID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return request, nil
}

func isValidMaintenanceTransition(from, to domain.MaintenanceStatus) bool {
	switch from {
	case domain.MaintenanceStatusOpen:
		return to == domain.MaintenanceStatusInProgress || to == domain.MaintenanceStatusResolved
	case domain.MaintenanceStatusInProgress:
		return to == domain.MaintenanceStatusResolved
	default:
		return false
	}
}

func (s *MaintenanceService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
