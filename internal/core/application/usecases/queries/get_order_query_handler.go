package queries

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/ports"
)

// GetOrderQueryHandler fetches one order from the platform and replaces the
// cached copy in place, preserving its position in the partner's list.
type GetOrderQueryHandler struct {
	sessionRepo ports.SessionRepository
	orderClient ports.OrderClient
	orderCache  ports.OrderCache
	logger      zerolog.Logger
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(
	sessionRepo ports.SessionRepository,
	orderClient ports.OrderClient,
	orderCache ports.OrderCache,
	logger zerolog.Logger,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		sessionRepo: sessionRepo,
		orderClient: orderClient,
		orderCache:  orderCache,
		logger:      logger,
	}
}

// Handle executes the query and returns the fresh order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
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

	fetched, err := h.orderClient.Get(ctx, accessToken, query.OrderID())
	if errors.Is(err, ports.ErrSessionExpired) {
		consoleSession.Invalidate()
		if saveErr := h.sessionRepo.Save(ctx, consoleSession); saveErr != nil {
			h.logger.Error().Err(saveErr).Msg("failed to purge expired session")
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	h.orderCache.Replace(actingPartner.ID(), fetched)
	return fetched, nil
}
