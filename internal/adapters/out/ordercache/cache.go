// Package ordercache holds the last known partner-visible order sets in
// process memory. Order data is owned by the retail platform; the cache only
// mirrors what the upstream last reported, so losing it on restart is free.
package ordercache

import (
	"sync"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/ports"
)

// Cache is a mutex-guarded per-partner order cache.
type Cache struct {
	mu     sync.RWMutex
	orders map[string][]*order.Order
}

// NewCache creates an empty order cache.
func NewCache() *Cache {
	return &Cache{orders: make(map[string][]*order.Order)}
}

var _ ports.OrderCache = (*Cache)(nil)

// ReplaceAll swaps the partner's entire cached set. The slice is copied so
// later mutation by the caller cannot reach the cache.
func (c *Cache) ReplaceAll(partnerID kernel.RemoteID, orders []*order.Order) {
	copied := make([]*order.Order, len(orders))
	copy(copied, orders)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[partnerID.String()] = copied
}

// Replace swaps a single cached order in place, preserving its position in
// the list. An order not yet cached is appended.
func (c *Cache) Replace(partnerID kernel.RemoteID, o *order.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := partnerID.String()
	for i, cached := range c.orders[key] {
		if cached.ID().IsEqual(o.ID()) {
			c.orders[key][i] = o
			return
		}
	}

	c.orders[key] = append(c.orders[key], o)
}

// Get returns the cached order with the given identifier, or nil.
func (c *Cache) Get(partnerID kernel.RemoteID, orderID kernel.RemoteID) *order.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cached := range c.orders[partnerID.String()] {
		if cached.ID().IsEqual(orderID) {
			return cached
		}
	}

	return nil
}

// All returns a copy of the partner's cached set in stored order.
func (c *Cache) All(partnerID kernel.RemoteID) []*order.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached := c.orders[partnerID.String()]
	copied := make([]*order.Order, len(cached))
	copy(copied, cached)
	return copied
}

// Drop discards the partner's cached set.
func (c *Cache) Drop(partnerID kernel.RemoteID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.orders, partnerID.String())
}
