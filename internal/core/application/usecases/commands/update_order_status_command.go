package commands

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order the acting partner holds to a new
// fulfillment status. The desired status must belong to the closed status
// set; the platform owns sequencing between statuses.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	orderID   kernel.RemoteID
	status    order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
func NewUpdateOrderStatusCommand(
	sessionID kernel.UUID,
	orderID kernel.RemoteID,
	status order.Status,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		sessionID: sessionID,
		orderID:   orderID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// SessionID returns the console session of the acting partner.
func (c UpdateOrderStatusCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OrderID returns the platform identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.RemoteID {
	return c.orderID
}

// Status returns the desired fulfillment status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
