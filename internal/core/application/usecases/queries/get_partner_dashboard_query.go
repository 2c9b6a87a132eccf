package queries

import (
	"errors"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/guard"
)

var ErrGetPartnerDashboardQueryIsNotConstructed = errors.New(
	"GetPartnerDashboardQuery must be created via NewGetPartnerDashboardQuery constructor",
)

// GetPartnerDashboardQuery retrieves the partner's aggregate counters as
// computed by the retail platform.
type GetPartnerDashboardQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerDashboardQuery creates a query for dashboard counters.
func NewGetPartnerDashboardQuery(sessionID kernel.UUID) (GetPartnerDashboardQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetPartnerDashboardQuery{}, err
	}

	return GetPartnerDashboardQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerDashboardQueryIsNotConstructed)
}

// SessionID returns the console session of the requesting partner.
func (q GetPartnerDashboardQuery) SessionID() kernel.UUID {
	return q.sessionID
}
