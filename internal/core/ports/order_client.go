package ports

import (
	"context"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
)

// DashboardOrders is the per-state order count rollup of the partner
// dashboard.
type DashboardOrders struct {
	Assigned        int
	Completed       int
	Pending         int
	Cancelled       int
	ReturnRequested int
}

// DashboardRevenue is the revenue rollup of the partner dashboard.
type DashboardRevenue struct {
	AssignedValue   float64
	CompletedValue  float64
	InProgressValue float64
	OutstandingCOD  float64
}

// PartnerDashboard is the rollup the retail platform computes for a
// partner. Read model only, no invariants beyond what the server sent.
type PartnerDashboard struct {
	Orders  DashboardOrders
	Revenue DashboardRevenue
}

// OrderClient talks to the retail platform's partner order surface.
// Every call requires a live access token; a 401 answer maps to
// ErrSessionExpired and the caller purges the session's credentials.
type OrderClient interface {
	// List fetches the full partner-visible order set, newest first.
	List(ctx context.Context, accessToken string) ([]*order.Order, error)

	// Get fetches a single order by its platform identifier.
	Get(ctx context.Context, accessToken string, orderID kernel.RemoteID) (*order.Order, error)

	// Accept claims an unassigned order for the calling partner and returns
	// the updated order. Losing the claim race maps to AlreadyAssignedError.
	Accept(ctx context.Context, accessToken string, orderID kernel.RemoteID) (*order.Order, error)

	// UpdateStatus moves an order the caller holds to the desired status and
	// returns the updated order. The platform owns status sequencing.
	UpdateStatus(ctx context.Context, accessToken string, orderID kernel.RemoteID, status order.Status) (*order.Order, error)

	// Dashboard fetches the partner's aggregate counters.
	Dashboard(ctx context.Context, accessToken string) (*PartnerDashboard, error)
}
