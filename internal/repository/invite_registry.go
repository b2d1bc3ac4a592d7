package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/persistence"
)

// ErrRegistryCorrupt indicates the stored registry value failed to parse.
// Callers decide fallback behavior; the registry never silently resets.
var ErrRegistryCorrupt = errors.New("invite registry data corrupt")

// InviteRegistry is the durable list of all issued invite codes, stored as a
// single JSON array under one well-known key in the key-value store. There is
// no partial-update API: every mutation is a full read-modify-write of the
// whole sequence, which is not safe under concurrent writers. Acceptable at
// the assumed scale (dozens to low hundreds of invites, one active client).
type InviteRegistry interface {
	Load(ctx context.Context) ([]domain.InviteCode, error)
	Save(ctx context.Context, codes []domain.InviteCode) error
}

type inviteRegistry struct {
	store persistence.KeyValueStore
	key   string
}

// NewInviteRegistry binds the registry to its key in the key-value store.
func NewInviteRegistry(store persistence.KeyValueStore, key string) InviteRegistry {
	if key == "" {
		key = "invites"
	}
	return &inviteRegistry{store: store, key: key}
}

func (r *inviteRegistry) Load(ctx context.Context) ([]domain.InviteCode, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, persistence.ErrKeyNotFound) {
			return []domain.InviteCode{}, nil
		}
		return nil, fmt.Errorf("load invite registry: %w", err)
	}

	var codes []domain.InviteCode
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryCorrupt, err)
	}
	return codes, nil
}

func (r *inviteRegistry) Save(ctx context.Context, codes []domain.InviteCode) error {
	raw, err := json.Marshal(codes)
	if err != nil {
		return fmt.Errorf("encode invite registry: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(raw)); err != nil {
		return fmt.Errorf("save invite registry: %w", err)
	}
	return nil
}
