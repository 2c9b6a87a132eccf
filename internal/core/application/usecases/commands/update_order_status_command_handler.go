package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/services"
	"partnerconsole/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves an order through its fulfillment
// lifecycle. Attempts on orders the partner does not hold are screened by the
// access policy before any upstream traffic; requesting the status the order
// already carries is a local no-op.
type UpdateOrderStatusCommandHandler struct {
	sessionRepo ports.SessionRepository
	orderClient ports.OrderClient
	orderCache  ports.OrderCache
	policy      services.OrderAccessPolicy
	logger      zerolog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(
	sessionRepo ports.SessionRepository,
	orderClient ports.OrderClient,
	orderCache ports.OrderCache,
	policy services.OrderAccessPolicy,
	logger zerolog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		sessionRepo: sessionRepo,
		orderClient: orderClient,
		orderCache:  orderCache,
		policy:      policy,
		logger:      logger,
	}
}

// Handle processes the status change and returns the updated order.
// Denials from the cached order (not yet accepted, held by another partner)
// short-circuit without an upstream call. A 401 from the platform purges the
// session's credentials before reporting ports.ErrSessionExpired.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateOrderStatusCommand,
) (*order.Order, error) {
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
		decision := h.policy.AuthorizeStatusUpdate(cached, actingPartner.ID(), command.Status())
		if !decision.Allowed() {
			return nil, decision.Reason()
		}

		if cached.Status() == command.Status() {
			return cached, nil
		}
	}

	updated, err := h.orderClient.UpdateStatus(ctx, accessToken, command.OrderID(), command.Status())
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

	h.orderCache.Replace(actingPartner.ID(), updated)
	return updated, nil
}
