package commands

import (
	"errors"

	"partnerconsole/internal/pkg/guard"
)

var ErrPurgeExpiredSessionsCommandIsNotConstructed = errors.New(
	"PurgeExpiredSessionsCommand must be created via NewPurgeExpiredSessionsCommand constructor",
)

// PurgeExpiredSessionsCommand removes console sessions whose credentials have
// all lapsed. Run periodically so the session store does not accumulate dead
// rows from abandoned browsers.
type PurgeExpiredSessionsCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredSessionsCommand creates a command to sweep expired sessions.
func NewPurgeExpiredSessionsCommand() PurgeExpiredSessionsCommand {
	return PurgeExpiredSessionsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredSessionsCommandIsNotConstructed)
}
