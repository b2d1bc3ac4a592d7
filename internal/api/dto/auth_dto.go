package dto

import "time"

// SignupRequest payload for new accounts. Tenants must include invite_code.
type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	InviteCode string `json:"invite_code"`
}

// LoginRequest payload for login. TOTPCode is required only when the account
// has two-factor enabled.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordResetRequest starts a reset flow.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest completes a reset flow.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// PasswordChangeRequest changes the password of an authenticated user.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// TwoFactorVerifyRequest confirms an authenticator code.
type TwoFactorVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFactorSetupResponse returns the provisioned secret.
type TwoFactorSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	Role             string  `json:"role"`
	AvatarURL        *string `json:"avatar_url,omitempty"`
	TwoFactorEnabled bool    `json:"two_factor_enabled"`
}
