package commands

import (
	"errors"

	"partnerconsole/internal/pkg/guard"
)

var ErrRefreshOrdersCommandIsNotConstructed = errors.New(
	"RefreshOrdersCommand must be created via NewRefreshOrdersCommand constructor",
)

// RefreshOrdersCommand triggers a background refresh of the cached order set
// for every authenticated partner. Keeps the console's order lists close to
// the platform's truth between interactive fetches.
type RefreshOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshOrdersCommand creates a command to refresh all order caches.
func NewRefreshOrdersCommand() RefreshOrdersCommand {
	return RefreshOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrdersCommandIsNotConstructed)
}
