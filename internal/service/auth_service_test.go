package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/landlordly/internal/config"
	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/persistence"
	"github.com/spec-kit/landlordly/internal/repository"
)

type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	byID      map[string]*domain.User
	nextID    int
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.byEmail[user.Email] = &clone
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.byID[user.ID] = &clone
	r.byEmail[user.Email] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

type fakeResetRepo struct {
	byToken map[string]*repository.PasswordResetToken
	nextID  int
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{byToken: make(map[string]*repository.PasswordResetToken)}
}

func (r *fakeResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	r.nextID++
	token.ID = fmt.Sprintf("reset-%d", r.nextID)
	token.CreatedAt = time.Now()
	clone := *token
	r.byToken[token.Token] = &clone
	return nil
}

func (r *fakeResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := r.byToken[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *token
	return &clone, nil
}

func (r *fakeResetRepo) MarkUsed(_ context.Context, id string) error {
	now := time.Now()
	for _, token := range r.byToken {
		if token.ID == id {
			token.UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *InviteService, repository.InviteRegistry) {
	t.Helper()
	registry := repository.NewInviteRegistry(persistence.NewMemoryKeyValueStore(), "invites")
	invites := NewInviteService(config.InviteConfig{BaseURL: "https://landlordly.app", CodeLength: 6}, registry, nil)

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   5,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              4,
			TOTPIssuer:              "Landlordly",
		},
	}
	users := newFakeUserRepo()
	svc := NewAuthService(cfg, AuthDependencies{
		UserRepo:          users,
		PasswordResetRepo: newFakeResetRepo(),
		Invites:           invites,
		Dispatcher:        nil,
	})
	return svc, users, invites, registry
}

func TestSignupLandlordNeedsNoInvite(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestAuthService(t)

	user, token, exp, err := svc.Signup(context.Background(), SignupInput{
		Email:    "landlord@example.com",
		Password: "secret1",
		Name:     "John Smith",
		Role:     domain.RoleLandlord,
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))
}

func TestSignupTenantConsumesInvite(t *testing.T) {
	t.Parallel()
	svc, _, invites, registry := newTestAuthService(t)
	ctx := context.Background()

	invite, err := invites.Issue(ctx, "landlord-1")
	require.NoError(t, err)

	_, _, _, err = svc.Signup(ctx, SignupInput{
		Email:      "tenant@example.com",
		Password:   "secret1",
		Name:       "Sarah Johnson",
		Role:       domain.RoleTenant,
		InviteCode: invite.Code,
	})
	require.NoError(t, err)

	codes, err := registry.Load(ctx)
	require.NoError(t, err)
	require.True(t, codes[0].Used)

	// Same code cannot register a second tenant.
	_, _, _, err = svc.Signup(ctx, SignupInput{
		Email:      "other@example.com",
		Password:   "secret1",
		Name:       "Other",
		Role:       domain.RoleTenant,
		InviteCode: invite.Code,
	})
	require.ErrorIs(t, err, ErrInviteInvalid)
}

func TestSignupTenantWithoutInvite(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestAuthService(t)

	_, _, _, err := svc.Signup(context.Background(), SignupInput{
		Email:    "tenant@example.com",
		Password: "secret1",
		Name:     "Sarah",
		Role:     domain.RoleTenant,
	})
	require.ErrorIs(t, err, ErrInviteRequired)
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, SignupInput{Email: "a@b.c", Password: "secret1", Name: "A", Role: "admin"})
	require.ErrorIs(t, err, ErrInvalidRole)

	_, _, _, err = svc.Signup(ctx, SignupInput{Email: "a@b.c", Password: "short", Name: "A", Role: domain.RoleLandlord})
	require.ErrorIs(t, err, ErrPasswordTooShort)

	_, _, _, err = svc.Signup(ctx, SignupInput{Email: "dup@b.c", Password: "secret1", Name: "A", Role: domain.RoleLandlord})
	require.NoError(t, err)
	_, _, _, err = svc.Signup(ctx, SignupInput{Email: "dup@b.c", Password: "secret1", Name: "B", Role: domain.RoleLandlord})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupInviteStaysConsumedWhenCreateFails(t *testing.T) {
	t.Parallel()
	svc, users, invites, registry := newTestAuthService(t)
	ctx := context.Background()

	invite, err := invites.Issue(ctx, "landlord-1")
	require.NoError(t, err)

	users.createErr = errors.New("db down")
	_, _, _, err = svc.Signup(ctx, SignupInput{
		Email:      "tenant@example.com",
		Password:   "secret1",
		Name:       "Sarah",
		Role:       domain.RoleTenant,
		InviteCode: invite.Code,
	})
	require.Error(t, err)

	// The invite was marked used before account creation and is not restored.
	codes, err := registry.Load(ctx)
	require.NoError(t, err)
	require.True(t, codes[0].Used)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, SignupInput{
		Email:    "landlord@example.com",
		Password: "secret1",
		Name:     "John",
		Role:     domain.RoleLandlord,
	})
	require.NoError(t, err)

	user, token, _, err := svc.Login(ctx, "landlord@example.com", "secret1", "")
	require.NoError(t, err)
	require.Equal(t, domain.RoleLandlord, user.Role)
	require.NotEmpty(t, token)

	_, _, _, err = svc.Login(ctx, "landlord@example.com", "wrong", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login(ctx, "nobody@example.com", "secret1", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTwoFactorFlow(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	user, _, _, err := svc.Signup(ctx, SignupInput{
		Email:    "landlord@example.com",
		Password: "secret1",
		Name:     "John",
		Role:     domain.RoleLandlord,
	})
	require.NoError(t, err)

	secret, url, err := svc.EnableTwoFactor(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, secret)
	require.Contains(t, url, "otpauth://")

	// Wrong code does not activate two-factor.
	require.ErrorIs(t, svc.VerifyTwoFactor(ctx, user.ID, "000000"), ErrTOTPInvalid)
	_, _, _, err = svc.Login(ctx, "landlord@example.com", "secret1", "")
	require.NoError(t, err)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, svc.VerifyTwoFactor(ctx, user.ID, code))

	// Password alone is no longer enough.
	_, _, _, err = svc.Login(ctx, "landlord@example.com", "secret1", "")
	require.ErrorIs(t, err, ErrTOTPRequired)

	code, err = totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	_, _, _, err = svc.Login(ctx, "landlord@example.com", "secret1", code)
	require.NoError(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, SignupInput{
		Email:    "landlord@example.com",
		Password: "secret1",
		Name:     "John",
		Role:     domain.RoleLandlord,
	})
	require.NoError(t, err)

	token, err := svc.RequestPasswordReset(ctx, "landlord@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	require.NoError(t, svc.ConfirmPasswordReset(ctx, token.Token, "newpass1"))

	_, _, _, err = svc.Login(ctx, "landlord@example.com", "secret1", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, _, err = svc.Login(ctx, "landlord@example.com", "newpass1", "")
	require.NoError(t, err)

	// Token is single use.
	require.ErrorIs(t, svc.ConfirmPasswordReset(ctx, token.Token, "another1"), ErrResetTokenInvalid)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	user, _, _, err := svc.Signup(ctx, SignupInput{
		Email:    "landlord@example.com",
		Password: "secret1",
		Name:     "John",
		Role:     domain.RoleLandlord,
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.ChangePassword(ctx, user.ID, "wrong", "newpass1"), ErrInvalidCredentials)
	require.NoError(t, svc.ChangePassword(ctx, user.ID, "secret1", "newpass1"))

	_, _, _, err = svc.Login(ctx, "landlord@example.com", "newpass1", "")
	require.NoError(t, err)
}
