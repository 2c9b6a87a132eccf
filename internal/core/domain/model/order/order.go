package order

import (
	"errors"
	"time"

	"partnerconsole/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the RestoreOrder factory. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder")

// Order represents a retail order as the upstream API reports it. The
// upstream is the aggregate's system of record: the console only ever
// restores orders from upstream responses and replaces cached records
// wholesale, never merging fields.
//
// Order follows these invariants:
//   - Must have a valid upstream identifier
//   - Status must be a member of the closed status set
//   - Address, charges and payment must be constructed values
//   - A nil assignedPartnerID means the order is unclaimed
//   - Can only be created through RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation; whether a
// given partner may claim or mutate an order is decided by the
// services.OrderAccessPolicy, not by the aggregate itself, because the
// upstream remains the final authority on every mutation.
type Order struct {
	// id is the upstream identifier for the order
	id kernel.RemoteID

	// status is the current state in the order lifecycle
	status Status

	// assignedPartnerID is the claiming partner's id (nil if unclaimed)
	assignedPartnerID *kernel.RemoteID

	// assignedPartner is the reduced view of the claiming partner,
	// present only when the upstream includes it
	assignedPartner *PartnerSummary

	// address is the delivery destination
	address Address

	// charges groups the order's monetary amounts
	charges Charges

	// payment groups the order's payment details
	payment Payment

	// createdAt is the upstream creation timestamp
	createdAt time.Time

	// items are the immutable order lines
	items []Item

	// isConstructed ensures the order was created via RestoreOrder
	isConstructed bool
}

// RestoreOrder reconstructs an Order from upstream data. This is the only
// way to create a valid Order; it validates every component so malformed
// upstream payloads are rejected before entering the domain model.
func RestoreOrder(
	id kernel.RemoteID,
	status Status,
	assignedPartnerID *kernel.RemoteID,
	assignedPartner *PartnerSummary,
	address Address,
	charges Charges,
	payment Payment,
	createdAt time.Time,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		address.Validate(),
		charges.Validate(),
		payment.Validate(),
	); err != nil {
		return nil, err
	}

	if assignedPartnerID != nil {
		if err := assignedPartnerID.Validate(); err != nil {
			return nil, err
		}
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                id,
		status:            status,
		assignedPartnerID: assignedPartnerID,
		assignedPartner:   assignedPartner,
		address:           address,
		charges:           charges,
		payment:           payment,
		createdAt:         createdAt,
		items:             items,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// RestoreOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their upstream identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's upstream identifier.
func (o *Order) ID() kernel.RemoteID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedPartnerID returns the claiming partner's id.
// Returns nil when the order is unclaimed.
func (o *Order) AssignedPartnerID() *kernel.RemoteID {
	return o.assignedPartnerID
}

// AssignedPartner returns the reduced view of the claiming partner.
// Returns nil when the order is unclaimed or the upstream omitted it.
func (o *Order) AssignedPartner() *PartnerSummary {
	return o.assignedPartner
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// Charges returns the order's monetary amounts.
func (o *Order) Charges() Charges {
	return o.charges
}

// Payment returns the order's payment details.
func (o *Order) Payment() Payment {
	return o.payment
}

// CreatedAt returns the upstream creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the immutable order lines.
func (o *Order) Items() []Item {
	return o.items
}

// IsUnassigned reports whether no partner has claimed the order.
func (o *Order) IsUnassigned() bool {
	return o.assignedPartnerID == nil
}

// IsAssignedTo reports whether the given partner holds the claim on the
// order.
func (o *Order) IsAssignedTo(partnerID kernel.RemoteID) bool {
	return o.assignedPartnerID != nil && o.assignedPartnerID.IsEqual(partnerID)
}

// ClaimantLabel returns the display label of the claiming partner: the
// summary's label when the upstream included one, otherwise a generic
// placeholder. Must only be called on assigned orders.
func (o *Order) ClaimantLabel() string {
	if o.assignedPartner != nil {
		return o.assignedPartner.Label()
	}
	return claimantPlaceholder
}
