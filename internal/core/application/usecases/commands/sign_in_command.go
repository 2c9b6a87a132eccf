// Package commands contains business operations that modify console state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, upstream call, persistence.
package commands

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/errs"
	"partnerconsole/internal/pkg/guard"
)

var ErrSignInCommandIsNotConstructed = errors.New(
	"SignInCommand must be created via NewSignInCommand constructor",
)

// SignInCommand represents a partner's request to authenticate with the
// retail platform and bind the resulting credentials to a console session.
//
// Example:
//
//	cmd, err := NewSignInCommand(sessionID, "partner@shop.example", "secret")
//	if err != nil {
//	    return fmt.Errorf("invalid sign-in data: %w", err)
//	}
//
//	handler := NewSignInCommandHandler(sessionRepo, authClient, cfg)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("sign-in failed: %w", err)
//	}
type SignInCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	email     string
	password  string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a command to authenticate a partner.
// Validates that the session ID is constructed and credentials are present.
func NewSignInCommand(sessionID kernel.UUID, email string, password string) (SignInCommand, error) {
	command := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return SignInCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSignInCommandIsNotConstructed if validation fails.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// SessionID returns the console session the credentials bind to.
func (c SignInCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Email returns the partner's login email.
func (c SignInCommand) Email() string {
	return c.email
}

// Password returns the partner's password.
func (c SignInCommand) Password() string {
	return c.password
}

func (c *SignInCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}

func (c *SignInCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *SignInCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
