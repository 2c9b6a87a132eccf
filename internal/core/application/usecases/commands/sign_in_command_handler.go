package commands

import (
	"context"
	"time"

	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/ports"
)

// CredentialTTL holds the validity windows the console grants to upstream
// tokens. The platform does not report expiries, so the console imposes its
// own: a short window for the access token and a longer one for refresh.
type CredentialTTL struct {
	Access  time.Duration
	Refresh time.Duration
}

// SignInCommandHandler exchanges partner credentials for upstream tokens and
// binds them to the console session.
//
// Example:
//
//	handler := NewSignInCommandHandler(sessionRepo, authClient, ttl)
//	cmd, _ := NewSignInCommand(sessionID, email, password)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ports.ErrInvalidCredentials) {
//	    // show the server's message, stay on the sign-in page
//	}
type SignInCommandHandler struct {
	sessionRepo ports.SessionRepository
	authClient  ports.AuthClient
	ttl         CredentialTTL
}

// NewSignInCommandHandler creates a handler for partner sign-in operations.
func NewSignInCommandHandler(
	sessionRepo ports.SessionRepository,
	authClient ports.AuthClient,
	ttl CredentialTTL,
) SignInCommandHandler {
	return SignInCommandHandler{
		sessionRepo: sessionRepo,
		authClient:  authClient,
		ttl:         ttl,
	}
}

// Handle processes the sign-in command.
// Loads the session, authenticates against the platform, and persists the
// authenticated session with both credentials stamped with console-side
// expiries. A rejected login surfaces ports.InvalidCredentialsError and
// leaves the session untouched.
func (h SignInCommandHandler) Handle(ctx context.Context, command SignInCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	consoleSession, err := h.sessionRepo.Get(ctx, command.SessionID())
	if err != nil {
		return err
	}

	authPartner, tokens, err := h.authClient.Login(ctx, command.Email(), command.Password())
	if err != nil {
		return err
	}

	now := time.Now()

	access, err := session.NewCredential(tokens.AccessToken, now.Add(h.ttl.Access))
	if err != nil {
		return err
	}

	// Some platform deployments issue no refresh token. The session then
	// lives only as long as the access window.
	refresh := session.RestoreCredential(tokens.RefreshToken, now.Add(h.ttl.Refresh))

	if err = consoleSession.Authenticate(authPartner, access, refresh, now); err != nil {
		return err
	}

	return h.sessionRepo.Save(ctx, consoleSession)
}
