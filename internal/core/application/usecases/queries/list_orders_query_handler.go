package queries

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/ports"
)

// requireAuthenticated extracts the acting partner and access token from a
// session, or reports ports.ErrSessionExpired.
func requireAuthenticated(s *session.Session, now time.Time) (*partner.Partner, string, error) {
	if !s.IsAuthenticated() || !s.HasCredential(now) {
		return nil, "", ports.ErrSessionExpired
	}

	return s.Partner(), s.AccessToken(), nil
}

// ListOrdersQueryHandler fetches the partner's order set from the platform
// and swaps the cached set wholesale. The cache is replaced, never merged:
// orders the platform stopped reporting disappear from the console too.
type ListOrdersQueryHandler struct {
	sessionRepo ports.SessionRepository
	orderClient ports.OrderClient
	orderCache  ports.OrderCache
	logger      zerolog.Logger
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(
	sessionRepo ports.SessionRepository,
	orderClient ports.OrderClient,
	orderCache ports.OrderCache,
	logger zerolog.Logger,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		sessionRepo: sessionRepo,
		orderClient: orderClient,
		orderCache:  orderCache,
		logger:      logger,
	}
}

// Handle executes the list query and returns the fresh order set.
// A 401 from the platform purges the session's credentials before
// reporting ports.ErrSessionExpired. Any other fetch failure falls back to
// the cached set kept warm by the background refresh, so a platform blip
// degrades the view to slightly stale instead of empty.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	consoleSession, err := h.sessionRepo.Get(ctx, query.SessionID())
	if err != nil {
		return nil, err
	}

	actingPartner, accessToken, err := requireAuthenticated(consoleSession, time.Now())
	if err != nil {
		return nil, err
	}

	orders, err := h.orderClient.List(ctx, accessToken)
	if errors.Is(err, ports.ErrSessionExpired) {
		consoleSession.Invalidate()
		if saveErr := h.sessionRepo.Save(ctx, consoleSession); saveErr != nil {
			h.logger.Error().Err(saveErr).Msg("failed to purge expired session")
		}
		return nil, err
	}
	if err != nil {
		if cached := h.orderCache.All(actingPartner.ID()); len(cached) > 0 {
			h.logger.Warn().Err(err).Msg("order list fetch failed, serving cached set")
			return cached, nil
		}
		return nil, err
	}

	h.orderCache.ReplaceAll(actingPartner.ID(), orders)
	return orders, nil
}
