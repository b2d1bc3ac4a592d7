package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/landlordly/internal/domain"
)

func newPropertyFixture(t *testing.T) (*PropertyService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	svc := NewPropertyService(PropertyDependencies{
		PropertyRepo: newFakePropertyRepo(),
		UnitRepo:     newFakeUnitRepo(),
		UserRepo:     users,
	})
	return svc, users
}

func TestCreateAndListProperties(t *testing.T) {
	t.Parallel()
	svc, _ := newPropertyFixture(t)
	ctx := context.Background()

	_, err := svc.CreateProperty(ctx, "landlord-1", "Sunset Apartments", "123 Sunset Blvd", nil)
	require.NoError(t, err)
	_, err = svc.CreateProperty(ctx, "landlord-1", "Bay View Complex", "456 Bay St", nil)
	require.NoError(t, err)

	_, err = svc.CreateProperty(ctx, "landlord-1", "", "789 Elm St", nil)
	require.Error(t, err)

	mine, err := svc.ListProperties(ctx, "landlord-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	other, err := svc.ListProperties(ctx, "landlord-2")
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestAddAndListUnits(t *testing.T) {
	t.Parallel()
	svc, _ := newPropertyFixture(t)
	ctx := context.Background()

	property, err := svc.CreateProperty(ctx, "landlord-1", "Sunset Apartments", "123 Sunset Blvd", nil)
	require.NoError(t, err)

	unit, err := svc.AddUnit(ctx, "landlord-1", property.ID, "101", 1850)
	require.NoError(t, err)
	require.Equal(t, domain.UnitStatusVacant, unit.Status)

	_, err = svc.AddUnit(ctx, "landlord-2", property.ID, "102", 1900)
	require.Error(t, err)

	_, err = svc.AddUnit(ctx, "landlord-1", property.ID, "102", 0)
	require.Error(t, err)

	units, err := svc.ListUnits(ctx, "landlord-1", property.ID)
	require.NoError(t, err)
	require.Len(t, units, 1)
}

func TestUpdateUnitTenantAssignment(t *testing.T) {
	t.Parallel()
	svc, users := newPropertyFixture(t)
	ctx := context.Background()

	tenant := &domain.User{Email: "tenant@example.com", Name: "Sarah", Role: domain.RoleTenant}
	require.NoError(t, users.Create(ctx, tenant))
	landlordUser := &domain.User{Email: "other@example.com", Name: "Other", Role: domain.RoleLandlord}
	require.NoError(t, users.Create(ctx, landlordUser))

	property, err := svc.CreateProperty(ctx, "landlord-1", "Sunset Apartments", "123 Sunset Blvd", nil)
	require.NoError(t, err)
	unit, err := svc.AddUnit(ctx, "landlord-1", property.ID, "101", 1850)
	require.NoError(t, err)

	// Assigning a landlord account as tenant is rejected.
	_, err = svc.UpdateUnit(ctx, "landlord-1", unit.ID, UnitUpdateInput{TenantID: &landlordUser.ID})
	require.Error(t, err)

	updated, err := svc.UpdateUnit(ctx, "landlord-1", unit.ID, UnitUpdateInput{TenantID: &tenant.ID})
	require.NoError(t, err)
	require.Equal(t, domain.UnitStatusOccupied, updated.Status)
	require.NotNil(t, updated.TenantID)

	mine, err := svc.GetTenantUnit(ctx, tenant.ID)
	require.NoError(t, err)
	require.Equal(t, unit.ID, mine.ID)

	// Clearing the tenant flips the unit back to vacant.
	empty := ""
	updated, err = svc.UpdateUnit(ctx, "landlord-1", unit.ID, UnitUpdateInput{TenantID: &empty})
	require.NoError(t, err)
	require.Nil(t, updated.TenantID)
	require.Equal(t, domain.UnitStatusVacant, updated.Status)
}

func TestDeletePropertyRemovesUnits(t *testing.T) {
	t.Parallel()
	svc, _ := newPropertyFixture(t)
	ctx := context.Background()

	property, err := svc.CreateProperty(ctx, "landlord-1", "Sunset Apartments", "123 Sunset Blvd", nil)
	require.NoError(t, err)
	_, err = svc.AddUnit(ctx, "landlord-1", property.ID, "101", 1850)
	require.NoError(t, err)

	require.Error(t, svc.DeleteProperty(ctx, "landlord-2", property.ID))
	require.NoError(t, svc.DeleteProperty(ctx, "landlord-1", property.ID))

	_, err = svc.ListUnits(ctx, "landlord-1", property.ID)
	require.Error(t, err)
}
