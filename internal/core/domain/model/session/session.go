package session

import (
	"errors"
	"fmt"
	"time"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/pkg/errs"
	"partnerconsole/internal/pkg/guard"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through NewSession or RestoreSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")

	// ErrNoValidCredential is returned when an operation requires a live
	// credential but neither the access nor the refresh credential is valid.
	ErrNoValidCredential = errors.New("session has no valid credential")
)

// State represents the authentication state of a session.
//
// State transitions:
//
//	Unknown ──> Restoring ──┬──> Authenticated ──> Anonymous
//	                        └──> Anonymous ──(sign-in)──> Authenticated
//
// Restoring is the only transient state. It is entered while the stored
// credential is being exchanged for a profile and is never persisted.
type State int

const (
	// StateUnknown means the session's stored credentials have not been
	// examined yet. Access decisions must wait for restoration to resolve.
	StateUnknown State = iota

	// StateRestoring means a profile fetch for the stored credential is in
	// flight. Transient; resolves to Authenticated or Anonymous.
	StateRestoring

	// StateAuthenticated means a verified partner identity is attached and a
	// live credential is present.
	StateAuthenticated

	// StateAnonymous means no usable credential exists; the partner must
	// sign in explicitly.
	StateAnonymous
)

// getStateStrings returns a map of State values to their names.
func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:       "Unknown",
		StateRestoring:     "Restoring",
		StateAuthenticated: "Authenticated",
		StateAnonymous:     "Anonymous",
	}
}

// String returns the human-readable name of the state.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the State value is a member of the state set.
func (s State) Validate() error {
	if _, ok := getStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%d is not a valid session state", s),
		)
	}
	return nil
}

// Session is the aggregate that owns the authenticated identity and the
// credential material for one browser session.
//
// Session follows these invariants:
//   - A partner identity is attached iff the session is Authenticated
//   - Authenticated requires a stored access credential
//   - Invalidate clears identity and both credentials together; a session
//     never keeps one without the other
//
// All mutations go through methods so the invariants cannot be bypassed;
// the persistence adapter writes every change through so a console restart
// restores sessions without re-prompting credentials.
type Session struct {
	id                 kernel.UUID
	state              State
	partner            *partner.Partner
	access             Credential
	refresh            Credential
	profileRefreshedAt time.Time

	guard guard.ConstructorGuard
}

// NewSession creates a fresh session for a browser that presented no session
// cookie. It starts in Unknown so the access guard waits for restoration to
// resolve before rendering a decision.
func NewSession() *Session {
	return &Session{
		id:    kernel.NewUUID(),
		state: StateUnknown,
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreSession reconstructs a session from persistence. Restoring is never
// persisted, so a stored state of Restoring is rejected.
func RestoreSession(
	id kernel.UUID,
	state State,
	p *partner.Partner,
	access Credential,
	refresh Credential,
	profileRefreshedAt time.Time,
) (*Session, error) {
	if err := errors.Join(id.Validate(), state.Validate()); err != nil {
		return nil, err
	}
	if state == StateRestoring {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"state",
			errors.New("Restoring is transient and cannot be persisted"),
		)
	}
	if state == StateAuthenticated {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if access.IsZero() {
			return nil, errs.NewValueIsRequiredError("access credential")
		}
	}

	return &Session{
		id:                 id,
		state:              state,
		partner:            p,
		access:             access,
		refresh:            refresh,
		profileRefreshedAt: profileRefreshedAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session identifier carried by the browser cookie.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// State returns the session's authentication state.
func (s *Session) State() State {
	return s.state
}

// Partner returns the authenticated identity, nil unless Authenticated.
func (s *Session) Partner() *partner.Partner {
	return s.partner
}

// AccessCredential returns the stored access credential.
func (s *Session) AccessCredential() Credential {
	return s.access
}

// RefreshCredential returns the stored refresh credential.
func (s *Session) RefreshCredential() Credential {
	return s.refresh
}

// AccessToken returns the current access token. The caller must read this at
// dispatch time, immediately before issuing an upstream request, so the
// latest stored token is always the one attached.
func (s *Session) AccessToken() string {
	return s.access.Token()
}

// ProfileRefreshedAt returns when the identity snapshot was last replaced
// from the upstream profile endpoint.
func (s *Session) ProfileRefreshedAt() time.Time {
	return s.profileRefreshedAt
}

// HasCredential reports whether any stored credential is still valid at the
// given instant.
func (s *Session) HasCredential(now time.Time) bool {
	return s.access.IsValid(now) || s.refresh.IsValid(now)
}

// IsAuthenticated reports whether a verified identity is attached.
func (s *Session) IsAuthenticated() bool {
	return s.state == StateAuthenticated
}

// BeginRestore marks the session as Restoring while the stored credential is
// exchanged for a profile. Access decisions observing this state must wait
// rather than redirect.
func (s *Session) BeginRestore() {
	s.state = StateRestoring
}

// Authenticate attaches a verified identity and fresh credentials after a
// successful sign-in. The access credential must be live.
func (s *Session) Authenticate(p *partner.Partner, access, refresh Credential, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !access.IsValid(now) {
		return ErrNoValidCredential
	}

	s.partner = p
	s.access = access
	s.refresh = refresh
	s.profileRefreshedAt = now
	s.state = StateAuthenticated
	return nil
}

// RefreshProfile replaces the identity snapshot wholesale after a profile
// fetch, keeping the stored credentials. Requires a live credential.
func (s *Session) RefreshProfile(p *partner.Partner, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !s.HasCredential(now) {
		return ErrNoValidCredential
	}

	s.partner = p
	s.profileRefreshedAt = now
	s.state = StateAuthenticated
	return nil
}

// Invalidate destroys the authenticated identity and both credentials and
// moves the session to Anonymous. Called on sign-out and whenever an
// upstream call answers 401.
func (s *Session) Invalidate() {
	s.partner = nil
	s.access = Credential{}
	s.refresh = Credential{}
	s.profileRefreshedAt = time.Time{}
	s.state = StateAnonymous
}

// NeedsRestore reports whether the session's stored credential should be
// exchanged for a profile before an access decision: either the credentials
// were never examined, or the identity snapshot is older than maxProfileAge.
func (s *Session) NeedsRestore(now time.Time, maxProfileAge time.Duration) bool {
	switch s.state {
	case StateUnknown:
		return true
	case StateAuthenticated:
		return now.Sub(s.profileRefreshedAt) > maxProfileAge
	default:
		return false
	}
}
