package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/events"
	"github.com/spec-kit/landlordly/internal/repository"
	apperrors "github.com/spec-kit/landlordly/pkg/util"
)

var ErrNoLeasedUnit = errors.New("tenant has no leased unit")

// PaymentService records and tracks rent payments.
type PaymentService struct {
	payments   repository.PaymentRepository
	units      repository.UnitRepository
	properties repository.PropertyRepository
	dispatcher events.Dispatcher
}

// PaymentDependencies bundles repositories for the payment service.
type PaymentDependencies struct {
	PaymentRepo  repository.PaymentRepository
	UnitRepo     repository.UnitRepository
	PropertyRepo repository.PropertyRepository
	Dispatcher   events.Dispatcher
}

// MakePaymentInput describes a tenant-initiated payment. A zero amount means
// "use the full rent amount of the leased unit".
type MakePaymentInput struct {
	Amount  float64
	DueDate time.Time
}

// NewPaymentService creates the service.
func NewPaymentService(deps PaymentDependencies) *PaymentService {
	return &PaymentService{
		payments:   deps.PaymentRepo,
		units:      deps.UnitRepo,
		properties: deps.PropertyRepo,
		dispatcher: deps.Dispatcher,
	}
}

// MakePayment records a completed rent payment for the tenant's unit.
func (s *PaymentService) MakePayment(ctx context.Context, tenantID string, input MakePaymentInput) (*domain.Payment, error) {
	unit, err := s.units.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, ErrNoLeasedUnit
	}

	amount := input.Amount
	if amount == 0 {
		amount = unit.RentAmount
	}
	if amount <= 0 {
		return nil, apperrors.NewValidationError("payment amount must be positive", nil)
	}

	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = time.Now()
	}

	now := time.Now()
	payment := &domain.Payment{
		TenantID: tenantID,
		UnitID:   unit.ID,
		Amount:   amount,
		Status:   domain.PaymentStatusCompleted,
		DueDate:  dueDate,
		PaidDate: &now,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventPaymentRecorded,
		ActorID: tenantID,
		Payload: events.PaymentRecordedPayload{
			PaymentID: payment.ID,
			UnitID:    payment.UnitID,
			Amount:    payment.Amount,
			Status:    payment.Status,
		},
	})
	return payment, nil
}

// PaymentHistory returns completed payments, newest paid first.
func (s *PaymentService) PaymentHistory(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	return s.payments.ListByTenantAndStatus(ctx, tenantID, domain.PaymentStatusCompleted)
}

// UpcomingPayments returns pending payments ordered by due date.
func (s *PaymentService) UpcomingPayments(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	return s.payments.ListByTenantAndStatus(ctx, tenantID, domain.PaymentStatusPending)
}

// UpdateStatus lets the landlord adjust a payment's status. Marking completed
// stamps the paid date; any other status clears it.
func (s *PaymentService) UpdateStatus(ctx context.Context, landlordID, paymentID string, status domain.PaymentStatus) (*domain.Payment, error) {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	unit, err := s.units.GetByID(ctx, payment.UnitID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	property, err := s.properties.GetByID(ctx, unit.PropertyID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if property.LandlordID != landlordID {
		return nil, apperrors.NewForbidden("payment belongs to another landlord's unit")
	}

	oldStatus := payment.Status
	payment.Status = status
	if status == domain.PaymentStatusCompleted {
		now := time.Now()
		payment.PaidDate = &now
	} else {
		payment.PaidDate = nil
	}
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventPaymentStatusChanged,
		ActorID: landlordID,
		Payload: events.PaymentStatusChangedPayload{
			PaymentID: payment.ID,
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return payment, nil
}

func (s *PaymentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
