// Package partner provides the authenticated identity model for the console.
// A Partner is the actor who signs in, claims orders and advances them
// through the delivery lifecycle.
package partner

import (
	"errors"
	"time"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/errs"
	"partnerconsole/internal/pkg/guard"
)

// ErrPartnerIsNotConstructed is returned when a Partner instance was not
// created through the RestorePartner factory. This ensures all identities are
// properly validated.
var ErrPartnerIsNotConstructed = errors.New("Partner must be created via RestorePartner")

// anonymousLabel is shown in place of identifying details when a partner has
// neither a full name nor an email on record.
const anonymousLabel = "Partner"

// Partner represents an authenticated identity as reported by the upstream
// auth endpoints. The upstream is authoritative: instances are only ever
// restored from its responses and replaced wholesale on profile refresh,
// never mutated field by field.
//
// Partner follows these invariants:
//   - Must have a valid upstream identifier
//   - Must have a non-empty email and role
//   - Can only be created through RestorePartner
type Partner struct {
	id          kernel.RemoteID
	fullName    string
	email       string
	role        string
	isVerified  bool
	phoneNumber string
	lastLogin   *time.Time

	guard guard.ConstructorGuard
}

// RestorePartner reconstructs a Partner from upstream profile data.
// fullName, phoneNumber and lastLogin are optional; empty string and nil mean
// the upstream reported no value.
func RestorePartner(
	id kernel.RemoteID,
	fullName string,
	email string,
	role string,
	isVerified bool,
	phoneNumber string,
	lastLogin *time.Time,
) (*Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if role == "" {
		return nil, errs.NewValueIsRequiredError("role")
	}

	return &Partner{
		id:          id,
		fullName:    fullName,
		email:       email,
		role:        role,
		isVerified:  isVerified,
		phoneNumber: phoneNumber,
		lastLogin:   lastLogin,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Partner instance was properly constructed through
// RestorePartner.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the partner's upstream identifier.
func (p *Partner) ID() kernel.RemoteID {
	return p.id
}

// FullName returns the partner's full name, or an empty string when the
// upstream reported none.
func (p *Partner) FullName() string {
	return p.fullName
}

// Email returns the partner's email address.
func (p *Partner) Email() string {
	return p.email
}

// Role returns the partner's upstream role.
func (p *Partner) Role() string {
	return p.role
}

// IsVerified reports whether the upstream has verified the partner.
func (p *Partner) IsVerified() bool {
	return p.isVerified
}

// PhoneNumber returns the partner's phone number, or an empty string when
// the upstream reported none.
func (p *Partner) PhoneNumber() string {
	return p.phoneNumber
}

// LastLogin returns the partner's last login time as reported by the
// upstream. Returns nil when unknown.
func (p *Partner) LastLogin() *time.Time {
	return p.lastLogin
}

// DisplayName returns the label shown to other partners: the full name when
// present, otherwise the email, otherwise a generic placeholder. No other
// identity fields are ever revealed through this method.
func (p *Partner) DisplayName() string {
	if p.fullName != "" {
		return p.fullName
	}
	if p.email != "" {
		return p.email
	}
	return anonymousLabel
}
