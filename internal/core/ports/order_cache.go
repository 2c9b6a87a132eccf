package ports

import (
	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
)

// OrderCache holds the last known partner-visible order set per partner.
// List refreshes replace the whole set; single-order refreshes replace one
// entry in place without disturbing the rest.
type OrderCache interface {
	// ReplaceAll swaps the partner's entire cached set for a fresh one.
	ReplaceAll(partnerID kernel.RemoteID, orders []*order.Order)

	// Replace swaps a single cached order, preserving its position. An
	// order not yet cached is appended.
	Replace(partnerID kernel.RemoteID, o *order.Order)

	// Get returns the cached order with the given identifier, or nil.
	Get(partnerID kernel.RemoteID, orderID kernel.RemoteID) *order.Order

	// All returns the partner's cached set in its stored position order.
	All(partnerID kernel.RemoteID) []*order.Order

	// Drop discards the partner's cached set.
	Drop(partnerID kernel.RemoteID)
}
