package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/services"
	"partnerconsole/internal/core/ports"
)

// AcceptOrderCommandHandler claims an order for the acting partner.
// The access policy screens the attempt against the cached order before any
// network traffic; a denial never reaches the platform. The platform remains
// the authority on the claim itself: losing the race surfaces
// ports.ErrAlreadyAssigned and the cache is reconciled with a re-fetch.
type AcceptOrderCommandHandler struct {
	sessionRepo ports.SessionRepository
	orderClient ports.OrderClient
	orderCache  ports.OrderCache
	policy      services.OrderAccessPolicy
	logger      zerolog.Logger
}

// NewAcceptOrderCommandHandler creates a handler for order claim operations.
func NewAcceptOrderCommandHandler(
	sessionRepo ports.SessionRepository,
	orderClient ports.OrderClient,
	orderCache ports.OrderCache,
	policy services.OrderAccessPolicy,
	logger zerolog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		sessionRepo: sessionRepo,
		orderClient: orderClient,
		orderCache:  orderCache,
		policy:      policy,
		logger:      logger,
	}
}

// Handle processes the claim command and returns the updated order.
// A policy denial against the cached order (already claimed, cancelled)
// short-circuits without an upstream call. A 401 from the platform purges
// the session's credentials before reporting ports.ErrSessionExpired.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	consoleSession, err := h.sessionRepo.Get(ctx, command.SessionID())
	if err != nil {
		return nil, err
	}

	actingPartner, accessToken, err := authenticatedPartner(consoleSession, time.Now())
	if err != nil {
		return nil, err
	}

	if cached := h.orderCache.Get(actingPartner.ID(), command.OrderID()); cached != nil {
		decision := h.policy.AuthorizeAccept(cached, actingPartner.ID())
		if !decision.Allowed() {
			return nil, decision.Reason()
		}
	}

	updated, err := h.orderClient.Accept(ctx, accessToken, command.OrderID())
	switch {
	case errors.Is(err, ports.ErrSessionExpired):
		consoleSession.Invalidate()
		if saveErr := h.sessionRepo.Save(ctx, consoleSession); saveErr != nil {
			h.logger.Error().Err(saveErr).Msg("failed to purge expired session")
		}
		return nil, err
	case errors.Is(err, ports.ErrAlreadyAssigned):
		h.reconcile(ctx, accessToken, actingPartner.ID(), command.OrderID())
		return nil, err
	case err != nil:
		return nil, err
	}

	h.orderCache.Replace(actingPartner.ID(), updated)
	return updated, nil
}

// reconcile refreshes the cached copy of an order after a lost claim race so
// the console shows the winning partner instead of stale unassigned state.
func (h AcceptOrderCommandHandler) reconcile(
	ctx context.Context,
	accessToken string,
	partnerID kernel.RemoteID,
	orderID kernel.RemoteID,
) {
	fresh, err := h.orderClient.Get(ctx, accessToken, orderID)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("order_id", orderID.String()).
			Msg("failed to reconcile order after lost claim race")
		return
	}

	h.orderCache.Replace(partnerID, fresh)
}
