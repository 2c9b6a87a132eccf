package queries

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its platform identifier.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	orderID   kernel.RemoteID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order.
func NewGetOrderQuery(sessionID kernel.UUID, orderID kernel.RemoteID) (GetOrderQuery, error) {
	if err := errors.Join(
		sessionID.Validate(),
		orderID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		sessionID: sessionID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// SessionID returns the console session of the requesting partner.
func (q GetOrderQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// OrderID returns the platform identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.RemoteID {
	return q.orderID
}
