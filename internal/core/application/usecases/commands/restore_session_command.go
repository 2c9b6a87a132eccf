package commands

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/guard"
)

var ErrRestoreSessionCommandIsNotConstructed = errors.New(
	"RestoreSessionCommand must be created via NewRestoreSessionCommand constructor",
)

// RestoreSessionCommand asks the console to re-verify a session's stored
// credentials against the platform and refresh the partner profile.
// Issued before the first guarded request of a browsing session and whenever
// the cached profile goes stale.
type RestoreSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreSessionCommand creates a command to restore a console session.
func NewRestoreSessionCommand(sessionID kernel.UUID) (RestoreSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return RestoreSessionCommand{}, err
	}

	return RestoreSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreSessionCommand) Validate() error {
	return c.guard.Validate(ErrRestoreSessionCommandIsNotConstructed)
}

// SessionID returns the console session to restore.
func (c RestoreSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
