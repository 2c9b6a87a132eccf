package kernel

import (
	"strings"

	"partnerconsole/internal/pkg/errs"
)

// ErrRemoteIDIsNotConstructed indicates that a RemoteID was not properly
// initialized through NewRemoteID. This error is returned when validating a
// zero-value RemoteID.
var ErrRemoteIDIsNotConstructed = errs.NewValueIsRequiredError(
	"RemoteID must be created via NewRemoteID",
)

// RemoteID is a value object that represents an identifier assigned by the
// upstream retail API. The upstream owns the id format, so the console treats
// it as an opaque non-empty string and never inspects its structure.
//
// The zero value of RemoteID is invalid and must be constructed through
// NewRemoteID. RemoteID is immutable and safe for concurrent use.
type RemoteID struct {
	value string
}

// NewRemoteID creates a RemoteID from an upstream identifier string.
// Surrounding whitespace is rejected rather than trimmed so that the value
// round-trips to the upstream exactly as received.
func NewRemoteID(value string) (RemoteID, error) {
	if value == "" {
		return RemoteID{}, errs.NewValueIsRequiredError("remote id")
	}
	if strings.TrimSpace(value) != value {
		return RemoteID{}, errs.NewValueIsInvalidError("remote id")
	}
	return RemoteID{value: value}, nil
}

// String returns the identifier exactly as the upstream issued it.
func (r RemoteID) String() string {
	return r.value
}

// IsEqual compares two RemoteIDs for equality.
func (r RemoteID) IsEqual(other RemoteID) bool {
	return r.value == other.value
}

// Validate checks if the RemoteID is properly constructed. Returns
// ErrRemoteIDIsNotConstructed for the zero value.
func (r RemoteID) Validate() error {
	if r.value == "" {
		return ErrRemoteIDIsNotConstructed
	}
	return nil
}
