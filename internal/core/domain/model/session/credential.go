package session

import (
	"time"

	"partnerconsole/internal/pkg/errs"
)

// Credential is an opaque bearer token together with its absolute expiry.
// The console never inspects token contents; validity is tracked purely by
// the expiry window recorded when the token was issued.
//
// The zero Credential means "no credential stored" and is a legal value,
// unlike most value objects in this codebase.
type Credential struct {
	token     string
	expiresAt time.Time
}

// NewCredential creates a credential from a freshly issued token and its
// absolute expiry.
func NewCredential(token string, expiresAt time.Time) (Credential, error) {
	if token == "" {
		return Credential{}, errs.NewValueIsRequiredError("token")
	}
	if expiresAt.IsZero() {
		return Credential{}, errs.NewValueIsRequiredError("token expiry")
	}

	return Credential{token: token, expiresAt: expiresAt}, nil
}

// RestoreCredential reconstructs a credential from persistence. An empty
// token restores the zero credential.
func RestoreCredential(token string, expiresAt time.Time) Credential {
	if token == "" {
		return Credential{}
	}
	return Credential{token: token, expiresAt: expiresAt}
}

// Token returns the opaque token string, empty for the zero credential.
func (c Credential) Token() string {
	return c.token
}

// ExpiresAt returns the absolute expiry of the credential.
func (c Credential) ExpiresAt() time.Time {
	return c.expiresAt
}

// IsZero reports whether no credential is stored.
func (c Credential) IsZero() bool {
	return c.token == ""
}

// IsValid reports whether the credential exists and has not expired at the
// given instant.
func (c Credential) IsValid(now time.Time) bool {
	return c.token != "" && now.Before(c.expiresAt)
}
