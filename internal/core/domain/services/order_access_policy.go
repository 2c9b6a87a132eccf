package services

import (
	"errors"
	"fmt"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
)

var (
	// ErrNotYetAccepted is the denial reason when a status mutation is
	// attempted on an order no partner has claimed.
	ErrNotYetAccepted = errors.New("order has not been accepted yet")

	// ErrOrderCancelled is the denial reason when a claim is attempted on a
	// cancelled order.
	ErrOrderCancelled = errors.New("cancelled orders cannot be accepted")

	// ErrAlreadyAccepted is the denial reason when a claim is attempted on
	// an order some partner already holds.
	ErrAlreadyAccepted = errors.New("order has already been accepted")

	// ErrLockedByAnotherPartner marks denials caused by another partner's
	// claim. Use errors.Is against this sentinel;
	// LockedByAnotherPartnerError carries the claimant's display label.
	ErrLockedByAnotherPartner = errors.New("order is locked by another partner")
)

// LockedByAnotherPartnerError reports a status mutation attempted on an
// order claimed by a different partner. PartnerLabel is the claimant's
// display label (full name, else email, else a generic placeholder); no
// other identity fields are exposed.
type LockedByAnotherPartnerError struct {
	PartnerLabel string
}

func (e *LockedByAnotherPartnerError) Error() string {
	return fmt.Sprintf("order is locked by another partner: %s", e.PartnerLabel)
}

func (e *LockedByAnotherPartnerError) Unwrap() error {
	return ErrLockedByAnotherPartner
}

// Decision is the outcome of an authorization check. Denials are values, not
// exceptions: they resolve locally, cost no network round trip, and carry a
// typed reason for display.
type Decision struct {
	reason error
}

// Allow returns a permitting decision.
func Allow() Decision {
	return Decision{}
}

// Deny returns a denying decision with the given reason.
func Deny(reason error) Decision {
	return Decision{reason: reason}
}

// Allowed reports whether the action may proceed.
func (d Decision) Allowed() bool {
	return d.reason == nil
}

// Reason returns the typed denial reason, nil when allowed.
func (d Decision) Reason() error {
	return d.reason
}

// OrderAccessPolicy is the domain service deciding which partner may claim
// an order and who may mutate its status thereafter. It is pure and
// stateless: it is invoked with the current order, the acting partner and
// the requested action, and returns a decision.
//
// The policy mirrors the upstream's rules defensively. A local Allow is
// never a guarantee: the upstream may still reject the mutation (for
// example when another partner accepted the order between fetch and submit)
// and the caller must reconcile against the upstream's response.
type OrderAccessPolicy struct{}

// NewOrderAccessPolicy creates a new OrderAccessPolicy instance.
func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// AuthorizeAccept decides whether the acting partner may claim the order.
//
// Rules:
//   - Unclaimed orders may be claimed by any authenticated partner unless
//     the order is cancelled
//   - Orders already claimed by the acting partner deny with
//     ErrAlreadyAccepted
//   - Orders claimed by anyone else deny with LockedByAnotherPartnerError
//
// Claiming is exclusive and racy: the first accepted write wins upstream, so
// callers must treat a local Allow as provisional and reconcile against the
// returned order.
func (p OrderAccessPolicy) AuthorizeAccept(o *order.Order, actingPartnerID kernel.RemoteID) Decision {
	if err := o.Validate(); err != nil {
		return Deny(err)
	}
	if err := actingPartnerID.Validate(); err != nil {
		return Deny(err)
	}

	if !o.IsUnassigned() {
		if o.IsAssignedTo(actingPartnerID) {
			return Deny(ErrAlreadyAccepted)
		}
		return Deny(&LockedByAnotherPartnerError{PartnerLabel: o.ClaimantLabel()})
	}

	if o.Status() == order.Cancelled {
		return Deny(ErrOrderCancelled)
	}

	return Allow()
}

// AuthorizeStatusUpdate decides whether the acting partner may move the
// order to the desired status.
//
// Rules:
//   - The desired status must be a member of the closed status set
//   - Unclaimed orders deny with ErrNotYetAccepted
//   - Orders claimed by a different partner deny with
//     LockedByAnotherPartnerError carrying the claimant's display label
//   - Orders claimed by the acting partner allow any member of the set,
//     including re-submitting the current status as a no-op; the upstream
//     owns sequencing legality, and out-of-order corrections (such as
//     reverting OutForDelivery to Confirmed after a failed handoff) are
//     deliberately permitted
func (p OrderAccessPolicy) AuthorizeStatusUpdate(
	o *order.Order,
	actingPartnerID kernel.RemoteID,
	desired order.Status,
) Decision {
	if err := o.Validate(); err != nil {
		return Deny(err)
	}
	if err := actingPartnerID.Validate(); err != nil {
		return Deny(err)
	}
	if err := desired.Validate(); err != nil {
		return Deny(err)
	}

	if o.IsUnassigned() {
		return Deny(ErrNotYetAccepted)
	}
	if !o.IsAssignedTo(actingPartnerID) {
		return Deny(&LockedByAnotherPartnerError{PartnerLabel: o.ClaimantLabel()})
	}

	return Allow()
}
