package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/spec-kit/landlordly/internal/config"
	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/events"
	"github.com/spec-kit/landlordly/internal/repository"
)

var (
	// ErrInviteRequired means tenant signup was attempted with no code.
	ErrInviteRequired = errors.New("invite code required")
	// ErrInviteInvalid means the code was never issued or already used.
	// The two cases are deliberately not distinguished to the end user.
	ErrInviteInvalid = errors.New("invite code invalid or already used")
)

const inviteAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IssuedInvite is the result of minting a new invite.
type IssuedInvite struct {
	Code string
	Link string
}

// InviteService issues tenant invite codes and redeems them at signup.
//
// The registry is a single document updated by full read-modify-write with no
// version token, so two concurrent redemptions can both observe a code as
// unused and both succeed; the second save silently wins. That race is an
// accepted limitation of the single-client, low-contention design. A
// multi-writer deployment needs a server-mediated test-and-set instead.
type InviteService struct {
	registry   repository.InviteRegistry
	dispatcher events.Dispatcher
	baseURL    string
	codeLength int
}

// NewInviteService builds the service.
func NewInviteService(cfg config.InviteConfig, registry repository.InviteRegistry, dispatcher events.Dispatcher) *InviteService {
	length := cfg.CodeLength
	if length <= 0 {
		length = 6
	}
	return &InviteService{
		registry:   registry,
		dispatcher: dispatcher,
		baseURL:    cfg.BaseURL,
		codeLength: length,
	}
}

// Issue generates a new code, appends it to the registry and returns the code
// with its shareable signup link. The generated code is uppercase base-36; no
// collision check is made against existing entries, uniqueness rests on the
// random space. If the save fails the code must not be distributed.
func (s *InviteService) Issue(ctx context.Context, actorID string) (*IssuedInvite, error) {
	code, err := generateInviteCode(s.codeLength)
	if err != nil {
		return nil, err
	}

	codes, err := s.registry.Load(ctx)
	if err != nil {
		return nil, err
	}
	codes = append(codes, domain.InviteCode{Code: code, Used: false})
	if err := s.registry.Save(ctx, codes); err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/(auth)/signup?invite=%s", s.baseURL, code)
	s.publish(ctx, events.Event{
		Type:    events.EventInviteIssued,
		ActorID: actorID,
		Payload: events.InviteIssuedPayload{Code: code, Link: link},
	})
	return &IssuedInvite{Code: code, Link: link}, nil
}

// Redeem validates a presented code for the given role and consumes it.
//
// Landlords skip the check entirely; storage is never touched. Tenants must
// present a non-empty code that exactly matches an unused registry entry.
// The match is case-sensitive even though generation always produces
// uppercase, so a lowercase transcription will not redeem; the link carries
// the code verbatim, which keeps the happy path safe.
//
// On success the used flag is persisted before the caller creates the
// account, so a crash between the two leaves the code consumed and a retry
// fails with ErrInviteInvalid rather than double-redeeming.
func (s *InviteService) Redeem(ctx context.Context, role domain.UserRole, code string) error {
	if role != domain.RoleTenant {
		return nil
	}
	if code == "" {
		return ErrInviteRequired
	}

	codes, err := s.registry.Load(ctx)
	if err != nil {
		return err
	}

	matched := -1
	for i, entry := range codes {
		if entry.Code == code && !entry.Used {
			matched = i
			break
		}
	}
	if matched < 0 {
		return ErrInviteInvalid
	}

	codes[matched].Used = true
	if err := s.registry.Save(ctx, codes); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventInviteRedeemed,
		Payload: events.InviteRedeemedPayload{Code: code},
	})
	return nil
}

func (s *InviteService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func generateInviteCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = inviteAlphabet[int(b)%len(inviteAlphabet)]
	}
	return string(buf), nil
}
