package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating an account.
type LoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the issued tokens and account info.
type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	Account      AccountInfo `json:"account"`
	IssuedAt     time.Time   `json:"issued_at"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	IP           string `json:"-"`
	UserAgent    string `json:"-"`
}

// RefreshTokenResponse returns the refreshed tokens.
type RefreshTokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	IssuedAt     time.Time `json:"issued_at"`
}

// RefreshToken is an opaque rotating session token held server-side.
type RefreshToken struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	Revoked   bool       `json:"revoked"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	IPAddress string     `json:"-"`
	UserAgent string     `json:"-"`
}

// ConfirmActionRequest re-authenticates the caller before an irreversible
// action. The password is exchanged for a short-lived single-purpose token
// rather than travelling with the action payload itself.
type ConfirmActionRequest struct {
	Password string `json:"password" validate:"required"`
	Action   string `json:"action" validate:"required"`
}

// ConfirmActionResponse returns the scoped confirmation token.
type ConfirmActionResponse struct {
	ConfirmToken string    `json:"confirm_token"`
	Action       string    `json:"action"`
	ExpiresIn    int64     `json:"expires_in"`
	IssuedAt     time.Time `json:"issued_at"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}

// ActionClaims represents the payload of a short-lived confirmation token.
type ActionClaims struct {
	Username string `json:"username"`
	Action   string `json:"action"`
	jwt.RegisteredClaims
}
