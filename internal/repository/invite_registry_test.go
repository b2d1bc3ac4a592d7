package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/persistence"
)

func TestInviteRegistryLoadAbsentKey(t *testing.T) {
	t.Parallel()
	registry := NewInviteRegistry(persistence.NewMemoryKeyValueStore(), "invites")

	codes, err := registry.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, codes)
	require.Empty(t, codes)
}

func TestInviteRegistryRoundTrip(t *testing.T) {
	t.Parallel()
	registry := NewInviteRegistry(persistence.NewMemoryKeyValueStore(), "invites")
	ctx := context.Background()

	in := []domain.InviteCode{
		{Code: "AAA111"},
		{Code: "BBB222", Used: true},
	}
	require.NoError(t, registry.Save(ctx, in))

	out, err := registry.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestInviteRegistryCorruptValue(t *testing.T) {
	t.Parallel()
	store := persistence.NewMemoryKeyValueStore()
	registry := NewInviteRegistry(store, "invites")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "invites", "{not json"))

	_, err := registry.Load(ctx)
	require.ErrorIs(t, err, ErrRegistryCorrupt)
}

func TestInviteRegistryDefaultKey(t *testing.T) {
	t.Parallel()
	store := persistence.NewMemoryKeyValueStore()
	registry := NewInviteRegistry(store, "")
	ctx := context.Background()

	require.NoError(t, registry.Save(ctx, []domain.InviteCode{{Code: "ZZZ999"}}))

	raw, err := store.Get(ctx, "invites")
	require.NoError(t, err)
	require.Contains(t, raw, "ZZZ999")
}
