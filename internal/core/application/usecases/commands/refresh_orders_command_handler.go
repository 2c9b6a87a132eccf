package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/ports"
)

// RefreshOrdersCommandHandler refreshes the cached order set of every
// authenticated partner. The access token is captured per session at
// dispatch time, so a sign-out mid-run only affects that partner's fetch.
type RefreshOrdersCommandHandler struct {
	sessionRepo ports.SessionRepository
	orderClient ports.OrderClient
	orderCache  ports.OrderCache
	logger      zerolog.Logger
}

// NewRefreshOrdersCommandHandler creates a handler for background order
// cache refreshes.
func NewRefreshOrdersCommandHandler(
	sessionRepo ports.SessionRepository,
	orderClient ports.OrderClient,
	orderCache ports.OrderCache,
	logger zerolog.Logger,
) RefreshOrdersCommandHandler {
	return RefreshOrdersCommandHandler{
		sessionRepo: sessionRepo,
		orderClient: orderClient,
		orderCache:  orderCache,
		logger:      logger,
	}
}

// Handle processes the refresh command.
// Each partner's list fetch is independent: a 401 purges that session's
// credentials, any other failure keeps the previous cached set in place.
func (h RefreshOrdersCommandHandler) Handle(ctx context.Context, command RefreshOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	sessions, err := h.sessionRepo.AllAuthenticated(ctx)
	if err != nil {
		return err
	}

	now := time.Now()

	for _, consoleSession := range sessions {
		actingPartner, accessToken, partnerErr := authenticatedPartner(consoleSession, now)
		if partnerErr != nil {
			continue
		}

		orders, listErr := h.orderClient.List(ctx, accessToken)
		if errors.Is(listErr, ports.ErrSessionExpired) {
			consoleSession.Invalidate()
			if saveErr := h.sessionRepo.Save(ctx, consoleSession); saveErr != nil {
				h.logger.Error().Err(saveErr).Msg("failed to purge expired session")
			}
			continue
		}
		if listErr != nil {
			h.logger.Warn().
				Err(listErr).
				Str("partner_id", actingPartner.ID().String()).
				Msg("background order refresh failed, keeping cached set")
			continue
		}

		h.orderCache.ReplaceAll(actingPartner.ID(), orders)
	}

	return nil
}
