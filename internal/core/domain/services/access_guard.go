package services

import (
	"time"

	"partnerconsole/internal/core/domain/model/session"
)

// Verdict is the access guard's decision for a guarded view.
type Verdict int

const (
	// VerdictAllow admits the request.
	VerdictAllow Verdict = iota

	// VerdictAwaitRestoration means the session's stored credential is still
	// being resolved. Callers must render a neutral waiting state and issue
	// no redirect, so a legitimate reload-time restoration never flashes a
	// sign-in redirect.
	VerdictAwaitRestoration

	// VerdictRedirectToSignIn means the session resolved to Anonymous; the
	// caller should redirect to the sign-in entry point, preserving the
	// originally requested location for a best-effort post-login return.
	VerdictRedirectToSignIn
)

// String returns the verdict name for logging.
func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "Allow"
	case VerdictAwaitRestoration:
		return "AwaitRestoration"
	case VerdictRedirectToSignIn:
		return "RedirectToSignIn"
	default:
		return "Unknown"
	}
}

// AccessGuard gates navigation to authenticated-only views based on session
// state. Pure: it inspects the session and the clock, performs no I/O, and
// leaves restoration itself to the caller.
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard instance.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// Decide renders the access decision for the session at the given instant.
// Unknown and Restoring sessions yield AwaitRestoration; an Authenticated
// session whose credentials have all expired is treated as Anonymous.
func (g AccessGuard) Decide(s *session.Session, now time.Time) Verdict {
	if s == nil {
		return VerdictRedirectToSignIn
	}

	switch s.State() {
	case session.StateUnknown, session.StateRestoring:
		return VerdictAwaitRestoration
	case session.StateAuthenticated:
		if !s.HasCredential(now) {
			return VerdictRedirectToSignIn
		}
		return VerdictAllow
	default:
		return VerdictRedirectToSignIn
	}
}
