package commands

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a partner's attempt to claim an unassigned
// order for fulfillment.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(sessionID, orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAcceptOrderCommandHandler(sessionRepo, orderClient, orderCache, policy)
//	_, err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrLockedByAnotherPartner):
//	    // show who holds the order
//	case errors.Is(err, ports.ErrAlreadyAssigned):
//	    // claim race lost, cache already reconciled
//	}
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	orderID   kernel.RemoteID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to claim an order.
func NewAcceptOrderCommand(sessionID kernel.UUID, orderID kernel.RemoteID) (AcceptOrderCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		orderID.Validate(),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		sessionID: sessionID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// SessionID returns the console session of the claiming partner.
func (c AcceptOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OrderID returns the platform identifier of the order to claim.
func (c AcceptOrderCommand) OrderID() kernel.RemoteID {
	return c.orderID
}
