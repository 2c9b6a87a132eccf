package queries

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/ports"
)

// GetPartnerDashboardQueryHandler fetches the partner's aggregate counters.
// The platform computes the numbers; the console only relays them.
type GetPartnerDashboardQueryHandler struct {
	sessionRepo ports.SessionRepository
	orderClient ports.OrderClient
	logger      zerolog.Logger
}

// NewGetPartnerDashboardQueryHandler creates a handler for dashboard queries.
func NewGetPartnerDashboardQueryHandler(
	sessionRepo ports.SessionRepository,
	orderClient ports.OrderClient,
	logger zerolog.Logger,
) GetPartnerDashboardQueryHandler {
	return GetPartnerDashboardQueryHandler{
		sessionRepo: sessionRepo,
		orderClient: orderClient,
		logger:      logger,
	}
}

// Handle executes the dashboard query.
func (h GetPartnerDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerDashboardQuery,
) (*ports.PartnerDashboard, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	consoleSession, err := h.sessionRepo.Get(ctx, query.SessionID())
	if err != nil {
		return nil, err
	}

	_, accessToken, err := requireAuthenticated(consoleSession, time.Now())
	if err != nil {
		return nil, err
	}

	dashboard, err := h.orderClient.Dashboard(ctx, accessToken)
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

	return dashboard, nil
}
