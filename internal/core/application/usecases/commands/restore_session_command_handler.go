package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/ports"
)

// RestoreSessionCommandHandler re-verifies a session's stored credentials.
// Restoration never fails loudly: a rejected token downgrades the session to
// anonymous, a transport failure leaves the last persisted state in place so
// the partner is not signed out by a flaky network.
//
// Example:
//
//	handler := NewRestoreSessionCommandHandler(sessionRepo, authClient, logger)
//	cmd, _ := NewRestoreSessionCommand(sessionID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // only infrastructure errors (session store) reach here
//	}
type RestoreSessionCommandHandler struct {
	sessionRepo ports.SessionRepository
	authClient  ports.AuthClient
	logger      zerolog.Logger
}

// NewRestoreSessionCommandHandler creates a handler for session restoration.
func NewRestoreSessionCommandHandler(
	sessionRepo ports.SessionRepository,
	authClient ports.AuthClient,
	logger zerolog.Logger,
) RestoreSessionCommandHandler {
	return RestoreSessionCommandHandler{
		sessionRepo: sessionRepo,
		authClient:  authClient,
		logger:      logger,
	}
}

// Handle processes the restore command.
// A session without a live credential settles as anonymous immediately.
// Otherwise the stored access token is presented to the platform's profile
// endpoint: success refreshes the partner snapshot, a 401 purges the
// credentials, and any other failure is absorbed without a state change.
func (h RestoreSessionCommandHandler) Handle(ctx context.Context, command RestoreSessionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	consoleSession, err := h.sessionRepo.Get(ctx, command.SessionID())
	if err != nil {
		return err
	}

	now := time.Now()

	if !consoleSession.IsAuthenticated() || !consoleSession.HasCredential(now) {
		consoleSession.Invalidate()
		return h.sessionRepo.Save(ctx, consoleSession)
	}

	consoleSession.BeginRestore()

	authPartner, err := h.authClient.Profile(ctx, consoleSession.AccessToken())
	if errors.Is(err, ports.ErrSessionExpired) {
		h.logger.Info().
			Str("session_id", consoleSession.ID().String()).
			Msg("stored credentials rejected, session downgraded to anonymous")

		consoleSession.Invalidate()
		return h.sessionRepo.Save(ctx, consoleSession)
	}
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("session_id", consoleSession.ID().String()).
			Msg("session restore failed, keeping last known state")

		return nil
	}

	if err = consoleSession.RefreshProfile(authPartner, now); err != nil {
		return err
	}

	return h.sessionRepo.Save(ctx, consoleSession)
}
