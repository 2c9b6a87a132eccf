package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/ports"
)

// PurgeExpiredSessionsCommandHandler sweeps sessions with fully lapsed
// credentials out of the session store.
type PurgeExpiredSessionsCommandHandler struct {
	sessionRepo ports.SessionRepository
	logger      zerolog.Logger
}

// NewPurgeExpiredSessionsCommandHandler creates a handler for the sweep.
func NewPurgeExpiredSessionsCommandHandler(
	sessionRepo ports.SessionRepository,
	logger zerolog.Logger,
) PurgeExpiredSessionsCommandHandler {
	return PurgeExpiredSessionsCommandHandler{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Handle processes the sweep command.
func (h PurgeExpiredSessionsCommandHandler) Handle(ctx context.Context, command PurgeExpiredSessionsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	removed, err := h.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	if removed > 0 {
		h.logger.Info().Int64("removed", removed).Msg("swept expired sessions")
	}

	return nil
}
