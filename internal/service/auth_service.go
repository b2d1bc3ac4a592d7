package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/landlordly/internal/auth"
	"github.com/spec-kit/landlordly/internal/config"
	"github.com/spec-kit/landlordly/internal/domain"
	"github.com/spec-kit/landlordly/internal/events"
	"github.com/spec-kit/landlordly/internal/repository"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRole         = errors.New("invalid role")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrTOTPRequired        = errors.New("totp code required")
	ErrTOTPInvalid         = errors.New("invalid totp code")
	ErrResetTokenInvalid   = errors.New("reset token expired or used")
	ErrTwoFactorNotEnabled = errors.New("two-factor not enabled")
)

const minPasswordLength = 6

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	invites    *InviteService
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
	resetTTL   time.Duration
	totpIssuer string
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Invites           *InviteService
	Dispatcher        events.Dispatcher
}

// SignupInput describes a registration request.
type SignupInput struct {
	Email      string
	Password   string
	Name       string
	Role       domain.UserRole
	InviteCode string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		invites:    deps.Invites,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
		totpIssuer: cfg.Auth.TOTPIssuer,
	}
}

// Signup creates a new account. Tenant signups must present a valid invite
// code, which is consumed before the account is created. If account creation
// then fails the invite stays consumed; it is not restored.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, string, time.Time, error) {
	if !input.Role.Valid() {
		return nil, "", time.Time{}, ErrInvalidRole
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", time.Time{}, ErrPasswordTooShort
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, ErrEmailTaken
	} else if err != nil && err != pgx.ErrNoRows {
		return nil, "", time.Time{}, err
	}

	if err := s.invites.Redeem(ctx, input.Role, input.InviteCode); err != nil {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventUserRegistered,
			ActorID: user.ID,
			Payload: events.UserRegisteredPayload{UserID: user.ID, Email: user.Email, Role: user.Role},
		})
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates a user. When two-factor is enabled a valid TOTP code is
// required in addition to the password.
func (s *AuthService) Login(ctx context.Context, email, password, totpCode string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if totpCode == "" {
			return nil, "", time.Time{}, ErrTOTPRequired
		}
		if user.TOTPSecret == nil || !auth.VerifyTOTP(*user.TOTPSecret, totpCode) {
			return nil, "", time.Time{}, ErrTOTPInvalid
		}
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout currently no-ops for stateless JWT approach.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// EnableTwoFactor provisions a TOTP secret for the user. The secret is stored
// immediately but two-factor only activates after VerifyTwoFactor succeeds.
func (s *AuthService) EnableTwoFactor(ctx context.Context, userID string) (string, string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}

	secret, url, err := auth.GenerateTOTPSecret(s.totpIssuer, user.Email)
	if err != nil {
		return "", "", err
	}

	user.TOTPSecret = &secret
	if err := s.users.Update(ctx, user); err != nil {
		return "", "", err
	}
	return secret, url, nil
}

// VerifyTwoFactor confirms the user's authenticator and activates two-factor.
func (s *AuthService) VerifyTwoFactor(ctx context.Context, userID, code string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == nil {
		return ErrTwoFactorNotEnabled
	}
	if !auth.VerifyTOTP(*user.TOTPSecret, code) {
		return ErrTOTPInvalid
	}
	if user.TwoFactorEnabled {
		return nil
	}
	user.TwoFactorEnabled = true
	return s.users.Update(ctx, user)
}

// RequestPasswordReset persists a reset token for the email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// ChangePassword verifies the current password before updating to a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
