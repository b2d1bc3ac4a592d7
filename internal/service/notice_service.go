package service

import (
	"context"
	"strings"

	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/events"
	"github.com/spec-kit/landlordly/internal/repository"
	apperrors "github.com/spec-kit/landlordly/pkg/util"
)

// NoticeService handles formal landlord-to-tenant notices.
type NoticeService struct {
	notices    repository.NoticeRepository
	units      repository.UnitRepository
	properties repository.PropertyRepository
	dispatcher events.Dispatcher
}

// NoticeDependencies bundles repositories for the notice service.
type NoticeDependencies struct {
	NoticeRepo   repository.NoticeRepository
	UnitRepo     repository.UnitRepository
	PropertyRepo repository.PropertyRepository
	Dispatcher   events.Dispatcher
}

// NoticeCreateInput describes a new notice.
type NoticeCreateInput struct {
	Type    domain.NoticeType
	UnitID  string
	Title   string
	Content string
}

// NewNoticeService constructs the service.
func NewNoticeService(deps NoticeDependencies) *NoticeService {
	return &NoticeService{
		notices:    deps.NoticeRepo,
		units:      deps.UnitRepo,
		properties: deps.PropertyRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Send issues a notice to the tenant of one of the landlord's units.
func (s *NoticeService) Send(ctx context.Context, landlordID string, input NoticeCreateInput) (*domain.Notice, error) {
	unit, err := s.units.GetByID(ctx, input.UnitID)
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
	if unit.TenantID == nil {
		return nil, apperrors.NewConflict("unit has no tenant", map[string]any{"unit_id": unit.ID})
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("title and content required", nil)
	}

	notice := &domain.Notice{
		Type:     input.Type,
		TenantID: *unit.TenantID,
		UnitID:   unit.ID,
		Title:    strings.TrimSpace(input.Title),
		Content:  strings.TrimSpace(input.Content),
	}
	if notice.Type == "" {
		notice.Type = domain.NoticeTypeCustom
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventNoticeSent,
			ActorID: landlordID,
			Payload: events.NoticeSentPayload{
				NoticeID: notice.ID,
				TenantID: notice.TenantID,
				Type:     notice.Type,
			},
		})
	}
	return notice, nil
}

// ListForTenant returns notices for the tenant, newest first.
func (s *NoticeService) ListForTenant(ctx context.Context, tenantID string) ([]domain.Notice, error) {
	return s.notices.ListByTenant(ctx, tenantID)
}

// Acknowledge records the tenant's acknowledgement.
func (s *NoticeService) Acknowledge(ctx context.Context, tenantID, noticeID string) error {
	notice, err := s.notices.GetByID(ctx, noticeID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if notice.TenantID != tenantID {
		return apperrors.NewForbidden("notice addressed to another tenant")
	}
	return apperrors.MapError(s.notices.MarkAcknowledged(ctx, noticeID))
}
