// Package queries contains read operations for retrieving console state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Order data originates upstream; queries refresh the per-partner cache as
// they read so later policy checks see the newest known assignment state.
package queries

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the full partner-visible order set.
//
// Example:
//
//	query, err := NewListOrdersQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list the partner's orders.
func NewListOrdersQuery(sessionID kernel.UUID) (ListOrdersQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// SessionID returns the console session of the requesting partner.
func (q ListOrdersQuery) SessionID() kernel.UUID {
	return q.sessionID
}
