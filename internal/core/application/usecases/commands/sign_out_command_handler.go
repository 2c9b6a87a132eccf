package commands

import (
	"context"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/ports"
)

// SignOutCommandHandler ends a console session. The upstream revoke is best
// effort: local state is always cleared, even when the platform is down or
// the token was already dead.
type SignOutCommandHandler struct {
	sessionRepo ports.SessionRepository
	authClient  ports.AuthClient
	orderCache  ports.OrderCache
	logger      zerolog.Logger
}

// NewSignOutCommandHandler creates a handler for sign-out operations.
func NewSignOutCommandHandler(
	sessionRepo ports.SessionRepository,
	authClient ports.AuthClient,
	orderCache ports.OrderCache,
	logger zerolog.Logger,
) SignOutCommandHandler {
	return SignOutCommandHandler{
		sessionRepo: sessionRepo,
		authClient:  authClient,
		orderCache:  orderCache,
		logger:      logger,
	}
}

// Handle processes the sign-out command.
// Attempts to revoke the refresh token upstream, then unconditionally clears
// the partner's cached orders and moves the session to anonymous. Only
// session store failures are reported to the caller.
func (h SignOutCommandHandler) Handle(ctx context.Context, command SignOutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	consoleSession, err := h.sessionRepo.Get(ctx, command.SessionID())
	if err != nil {
		return err
	}

	if refresh := consoleSession.RefreshCredential(); !refresh.IsZero() {
		if revokeErr := h.authClient.Logout(ctx, refresh.Token()); revokeErr != nil {
			h.logger.Warn().
				Err(revokeErr).
				Str("session_id", consoleSession.ID().String()).
				Msg("upstream token revoke failed, clearing local state anyway")
		}
	}

	if authPartner := consoleSession.Partner(); authPartner != nil {
		h.orderCache.Drop(authPartner.ID())
	}

	consoleSession.Invalidate()
	return h.sessionRepo.Save(ctx, consoleSession)
}
