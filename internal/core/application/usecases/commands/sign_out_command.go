package commands

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/guard"
)

var ErrSignOutCommandIsNotConstructed = errors.New(
	"SignOutCommand must be created via NewSignOutCommand constructor",
)

// SignOutCommand ends a partner's console session.
type SignOutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSignOutCommand creates a command to end a console session.
func NewSignOutCommand(sessionID kernel.UUID) (SignOutCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return SignOutCommand{}, err
	}

	return SignOutCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SignOutCommand) Validate() error {
	return c.guard.Validate(ErrSignOutCommandIsNotConstructed)
}

// SessionID returns the console session to end.
func (c SignOutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
