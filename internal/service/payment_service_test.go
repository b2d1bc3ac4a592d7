package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/landlordly/internal/domain"
)

type paymentFixture struct {
	svc      *PaymentService
	payments *fakePaymentRepo
	units    *fakeUnitRepo
	props    *fakePropertyRepo
	unit     *domain.Unit
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	props := newFakePropertyRepo()
	units := newFakeUnitRepo()
	payments := newFakePaymentRepo()
	ctx := context.Background()

	property := &domain.Property{LandlordID: "landlord-1", Name: "Sunset Apartments", Address: "123 Sunset Blvd"}
	require.NoError(t, props.Create(ctx, property))

	tenantID := "tenant-1"
	unit := &domain.Unit{
		PropertyID: property.ID,
		UnitNumber: "101",
		RentAmount: 1850,
		TenantID:   &tenantID,
		Status:     domain.UnitStatusOccupied,
	}
	require.NoError(t, units.Create(ctx, unit))

	svc := NewPaymentService(PaymentDependencies{
		PaymentRepo:  payments,
		UnitRepo:     units,
		PropertyRepo: props,
	})
	return &paymentFixture{svc: svc, payments: payments, units: units, props: props, unit: unit}
}

func TestMakePaymentDefaultsToRentAmount(t *testing.T) {
	t.Parallel()
	f := newPaymentFixture(t)

	payment, err := f.svc.MakePayment(context.Background(), "tenant-1", MakePaymentInput{})
	require.NoError(t, err)
	require.Equal(t, 1850.0, payment.Amount)
	require.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	require.NotNil(t, payment.PaidDate)
	require.Equal(t, f.unit.ID, payment.UnitID)
}

func TestMakePaymentWithoutLease(t *testing.T) {
	t.Parallel()
	f := newPaymentFixture(t)

	_, err := f.svc.MakePayment(context.Background(), "tenant-2", MakePaymentInput{Amount: 100})
	require.ErrorIs(t, err, ErrNoLeasedUnit)
}

func TestPaymentHistoryAndUpcoming(t *testing.T) {
	t.Parallel()
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.svc.MakePayment(ctx, "tenant-1", MakePaymentInput{})
	require.NoError(t, err)
	require.NoError(t, f.payments.Create(ctx, &domain.Payment{
		TenantID: "tenant-1",
		UnitID:   f.unit.ID,
		Amount:   1850,
		Status:   domain.PaymentStatusPending,
		DueDate:  time.Now().AddDate(0, 1, 0),
	}))

	history, err := f.svc.PaymentHistory(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, domain.PaymentStatusCompleted, history[0].Status)

	upcoming, err := f.svc.UpcomingPayments(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	require.Equal(t, domain.PaymentStatusPending, upcoming[0].Status)
}

func TestUpdatePaymentStatus(t *testing.T) {
	t.Parallel()
	f := newPaymentFixture(t)
	ctx := context.Background()

	pending := &domain.Payment{
		TenantID: "tenant-1",
		UnitID:   f.unit.ID,
		Amount:   1850,
		Status:   domain.PaymentStatusPending,
		DueDate:  time.Now(),
	}
	require.NoError(t, f.payments.Create(ctx, pending))

	updated, err := f.svc.UpdateStatus(ctx, "landlord-1", pending.ID, domain.PaymentStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusCompleted, updated.Status)
	require.NotNil(t, updated.PaidDate)

	// Reverting clears the paid date.
	updated, err = f.svc.UpdateStatus(ctx, "landlord-1", pending.ID, domain.PaymentStatusLate)
	require.NoError(t, err)
	require.Nil(t, updated.PaidDate)
}

func TestUpdatePaymentStatusWrongLandlord(t *testing.T) {
	t.Parallel()
	f := newPaymentFixture(t)
	ctx := context.Background()

	pending := &domain.Payment{
		TenantID: "tenant-1",
		UnitID:   f.unit.ID,
		Amount:   1850,
		Status:   domain.PaymentStatusPending,
		DueDate:  time.Now(),
	}
	require.NoError(t, f.payments.Create(ctx, pending))

	_, err := f.svc.UpdateStatus(ctx, "landlord-2", pending.ID, domain.PaymentStatusCompleted)
	require.Error(t, err)

	stored, getErr := f.payments.GetByID(ctx, pending.ID)
	require.NoError(t, getErr)
	require.Equal(t, domain.PaymentStatusPending, stored.Status)
}
