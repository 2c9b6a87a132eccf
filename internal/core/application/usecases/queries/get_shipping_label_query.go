package queries

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/guard"
)

var ErrGetShippingLabelQueryIsNotConstructed = errors.New(
	"GetShippingLabelQuery must be created via NewGetShippingLabelQuery constructor",
)

// GetShippingLabelQuery assembles the printable shipping label payload for
// an order the partner holds.
type GetShippingLabelQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	orderID   kernel.RemoteID

	guard guard.ConstructorGuard
}

// NewGetShippingLabelQuery creates a query for a shipping label.
func NewGetShippingLabelQuery(sessionID kernel.UUID, orderID kernel.RemoteID) (GetShippingLabelQuery, error) {
	if err := errors.Join(
		sessionID.Validate(),
		orderID.Validate(),
	); err != nil {
		return GetShippingLabelQuery{}, err
	}

	return GetShippingLabelQuery{
		sessionID: sessionID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShippingLabelQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingLabelQueryIsNotConstructed)
}

// SessionID returns the console session of the requesting partner.
func (q GetShippingLabelQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// OrderID returns the platform identifier of the order to label.
func (q GetShippingLabelQuery) OrderID() kernel.RemoteID {
	return q.orderID
}

// ShippingLabelItem is one order line on the printed label.
type ShippingLabelItem struct {
	Name     string
	Quantity int
	SKU      string
	Amount   float64
}

// ShippingLabel is the read model backing the printable label. CODAmount is
// the order total when payment collects on delivery, zero otherwise.
type ShippingLabel struct {
	OrderID        string
	CustomerName   string
	CustomerPhone  string
	AddressLine1   string
	AddressLine2   string
	City           string
	State          string
	PostalCode     string
	Items          []ShippingLabelItem
	Subtotal       float64
	ShippingFee    float64
	DiscountAmount float64
	CODAmount      float64
	PaymentMethod  string
}
