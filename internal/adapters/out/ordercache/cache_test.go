package ordercache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerconsole/internal/adapters/out/ordercache"
	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
)

func mustRemoteID(t *testing.T, value string) kernel.RemoteID {
	t.Helper()
	id, err := kernel.NewRemoteID(value)
	require.NoError(t, err)
	return id
}

func buildOrder(t *testing.T, orderID string, status order.Status) *order.Order {
	t.Helper()

	address, err := order.NewAddress(
		"Ravi Kumar", "", "14 MG Road", "", "Bengaluru", "Karnataka", "",
	)
	require.NoError(t, err)

	charges, err := order.NewCharges(500, 500, 0, 0)
	require.NoError(t, err)

	payment, err := order.NewPayment("PREPAID", "paid", "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		mustRemoteID(t, orderID), status, nil, nil,
		address, charges, payment, time.Now(), nil,
	)
	require.NoError(t, err)
	return o
}

func TestCache_ReplaceAll_SwapsWholeSet(t *testing.T) {
	cache := ordercache.NewCache()
	partnerID := mustRemoteID(t, "partner-1")

	cache.ReplaceAll(partnerID, []*order.Order{
		buildOrder(t, "order-1", order.Placed),
		buildOrder(t, "order-2", order.Confirmed),
	})
	cache.ReplaceAll(partnerID, []*order.Order{
		buildOrder(t, "order-3", order.Placed),
	})

	all := cache.All(partnerID)
	require.Len(t, all, 1)
	assert.Equal(t, "order-3", all[0].ID().String())
	// Orders dropped upstream disappear here too.
	assert.Nil(t, cache.Get(partnerID, mustRemoteID(t, "order-1")))
}

func TestCache_Replace_PreservesPosition(t *testing.T) {
	cache := ordercache.NewCache()
	partnerID := mustRemoteID(t, "partner-1")

	cache.ReplaceAll(partnerID, []*order.Order{
		buildOrder(t, "order-1", order.Placed),
		buildOrder(t, "order-2", order.Confirmed),
		buildOrder(t, "order-3", order.Placed),
	})

	cache.Replace(partnerID, buildOrder(t, "order-2", order.Packed))

	all := cache.All(partnerID)
	require.Len(t, all, 3)
	assert.Equal(t, "order-2", all[1].ID().String())
	assert.Equal(t, order.Packed, all[1].Status())
}

func TestCache_Replace_AppendsUnknownOrder(t *testing.T) {
	cache := ordercache.NewCache()
	partnerID := mustRemoteID(t, "partner-1")

	cache.Replace(partnerID, buildOrder(t, "order-9", order.Placed))

	all := cache.All(partnerID)
	require.Len(t, all, 1)
	assert.Equal(t, "order-9", all[0].ID().String())
}

func TestCache_SetsAreIsolatedPerPartner(t *testing.T) {
	cache := ordercache.NewCache()
	firstPartner := mustRemoteID(t, "partner-1")
	secondPartner := mustRemoteID(t, "partner-2")

	cache.ReplaceAll(firstPartner, []*order.Order{buildOrder(t, "order-1", order.Placed)})
	cache.ReplaceAll(secondPartner, []*order.Order{buildOrder(t, "order-2", order.Placed)})

	cache.Drop(firstPartner)

	assert.Empty(t, cache.All(firstPartner))
	assert.Len(t, cache.All(secondPartner), 1)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := ordercache.NewCache()
	partnerID := mustRemoteID(t, "partner-1")
	fresh := buildOrder(t, "order-1", order.Placed)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Replace(partnerID, fresh)
		}()
		go func() {
			defer wg.Done()
			_ = cache.Get(partnerID, fresh.ID())
			_ = cache.All(partnerID)
		}()
	}
	wg.Wait()

	require.NotNil(t, cache.Get(partnerID, fresh.ID()))
}
