package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/services"
	"partnerconsole/internal/core/ports"
)

// GetShippingLabelQueryHandler builds the printable label for an order the
// partner holds. Only the claimant may print a label: unclaimed orders and
// orders held by another partner are refused with the same reasons the
// mutation paths give.
type GetShippingLabelQueryHandler struct {
	sessionRepo ports.SessionRepository
	orderClient ports.OrderClient
	orderCache  ports.OrderCache
	logger      zerolog.Logger
}

// NewGetShippingLabelQueryHandler creates a handler for label queries.
func NewGetShippingLabelQueryHandler(
	sessionRepo ports.SessionRepository,
	orderClient ports.OrderClient,
	orderCache ports.OrderCache,
	logger zerolog.Logger,
) GetShippingLabelQueryHandler {
	return GetShippingLabelQueryHandler{
		sessionRepo: sessionRepo,
		orderClient: orderClient,
		orderCache:  orderCache,
		logger:      logger,
	}
}

// Handle executes the label query.
// Prefers the cached order; falls back to an upstream fetch when the label
// is requested before the order was ever listed.
func (h GetShippingLabelQueryHandler) Handle(
	ctx context.Context,
	query GetShippingLabelQuery,
) (*ShippingLabel, error) {
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

	labelled := h.orderCache.Get(actingPartner.ID(), query.OrderID())
	if labelled == nil {
		labelled, err = h.orderClient.Get(ctx, accessToken, query.OrderID())
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

		h.orderCache.Replace(actingPartner.ID(), labelled)
	}

	if labelled.IsUnassigned() {
		return nil, services.ErrNotYetAccepted
	}
	if !labelled.IsAssignedTo(actingPartner.ID()) {
		return nil, &services.LockedByAnotherPartnerError{PartnerLabel: labelled.ClaimantLabel()}
	}

	return buildShippingLabel(labelled), nil
}

func buildShippingLabel(o *order.Order) *ShippingLabel {
	items := make([]ShippingLabelItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ShippingLabelItem{
			Name:     item.ProductName(),
			Quantity: item.Quantity(),
			SKU:      item.SKU(),
			Amount:   item.TotalPrice(),
		})
	}

	var codAmount float64
	if strings.EqualFold(o.Payment().Method(), "cod") {
		codAmount = o.Charges().Total()
	}

	address := o.Address()
	return &ShippingLabel{
		OrderID:        o.ID().String(),
		CustomerName:   address.Name(),
		CustomerPhone:  address.Phone(),
		AddressLine1:   address.Line1(),
		AddressLine2:   address.Line2(),
		City:           address.City(),
		State:          address.State(),
		PostalCode:     address.PostalCode(),
		Items:          items,
		Subtotal:       o.Charges().Subtotal(),
		ShippingFee:    o.Charges().ShippingFee(),
		DiscountAmount: o.Charges().DiscountAmount(),
		CODAmount:      codAmount,
		PaymentMethod:  o.Payment().Method(),
	}
}
