package order

import (
	"fmt"

	"partnerconsole/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as reported by the
// upstream retail API.
//
// The set is closed, but no ordering between members is enforced on this
// side: a claimed order may move to any member of the set, including moving
// backwards (for example reverting from OutForDelivery to Confirmed after a
// failed handoff). Sequencing legality is owned by the upstream.
//
// Canonical progression for reference:
//
//	Placed -> Confirmed -> Packed -> OutForDelivery -> Delivered
//	   \
//	    -> Cancelled            Delivered -> ReturnRequested -> Returned
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when a customer places an order.
	Placed

	// Confirmed indicates the order has been confirmed for fulfillment.
	Confirmed

	// Packed indicates the order has been packed and is ready to ship.
	Packed

	// OutForDelivery indicates the order is with the carrier.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled indicates the order was cancelled. Cancelled orders can no
	// longer be claimed by a partner.
	Cancelled

	// ReturnRequested indicates the customer asked to return the order.
	ReturnRequested

	// Returned indicates the order came back to the warehouse.
	Returned
)

// getStatusStrings returns a map of Status values to their wire
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Placed:          "PLACED",
		Confirmed:       "CONFIRMED",
		Packed:          "PACKED",
		OutForDelivery:  "OUT_FOR_DELIVERY",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
		ReturnRequested: "RETURN_REQUESTED",
		Returned:        "RETURNED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:          "PLACED",
		Confirmed:       "CONFIRMED",
		Packed:          "PACKED",
		OutForDelivery:  "OUT_FOR_DELIVERY",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
		ReturnRequested: "RETURN_REQUESTED",
		Returned:        "RETURNED",
	}
}

// ParseStatus converts a wire string such as "OUT_FOR_DELIVERY" into a
// Status. Returns an error for any string outside the closed set; the
// comparison is case-sensitive because the upstream always sends upper snake
// case.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is a member of the closed set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status, for example
// "OUT_FOR_DELIVERY". Implements fmt.Stringer and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
