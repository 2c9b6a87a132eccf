package ports

import (
	"context"

	"partnerconsole/internal/core/domain/model/partner"
)

// Tokens is the credential pair minted by the retail platform on sign-in.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// AuthClient talks to the retail platform's authentication surface.
type AuthClient interface {
	// Login exchanges partner credentials for a profile and token pair.
	// Rejected credentials map to InvalidCredentialsError.
	Login(ctx context.Context, email string, password string) (*partner.Partner, Tokens, error)

	// Profile fetches the partner profile for a live access token.
	// A 401 answer maps to ErrSessionExpired.
	Profile(ctx context.Context, accessToken string) (*partner.Partner, error)

	// Logout revokes the refresh token upstream. Best effort: callers clear
	// local state regardless of the outcome.
	Logout(ctx context.Context, refreshToken string) error
}
