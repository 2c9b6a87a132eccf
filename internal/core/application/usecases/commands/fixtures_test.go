package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/core/domain/model/session"
)

func mustRemoteID(t *testing.T, value string) kernel.RemoteID {
	t.Helper()
	id, err := kernel.NewRemoteID(value)
	require.NoError(t, err)
	return id
}

func testPartner(t *testing.T, id string) *partner.Partner {
	t.Helper()
	p, err := partner.RestorePartner(
		mustRemoteID(t, id),
		"Asha Verma",
		"asha@shop.example",
		"partner",
		true,
		"+91-9000000001",
		nil,
	)
	require.NoError(t, err)
	return p
}

// authenticatedSession builds a persisted-looking session with live
// credentials for the given partner.
func authenticatedSession(t *testing.T, p *partner.Partner) *session.Session {
	t.Helper()
	now := time.Now()
	s, err := session.RestoreSession(
		kernel.NewUUID(),
		session.StateAuthenticated,
		p,
		session.RestoreCredential("access-token", now.Add(time.Hour)),
		session.RestoreCredential("refresh-token", now.Add(14*24*time.Hour)),
		now,
	)
	require.NoError(t, err)
	return s
}

func anonymousSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.RestoreSession(
		kernel.NewUUID(),
		session.StateAnonymous,
		nil,
		session.Credential{},
		session.Credential{},
		time.Time{},
	)
	require.NoError(t, err)
	return s
}

// buildOrder assembles a valid order, optionally assigned to a partner.
func buildOrder(t *testing.T, orderID string, status order.Status, assignedTo *kernel.RemoteID) *order.Order {
	t.Helper()

	address, err := order.NewAddress(
		"Ravi Kumar", "+91-9000000002",
		"14 MG Road", "", "Bengaluru", "Karnataka", "560001",
	)
	require.NoError(t, err)

	charges, err := order.NewCharges(1099, 999, 100, 0)
	require.NoError(t, err)

	payment, err := order.NewPayment("COD", "pending", "")
	require.NoError(t, err)

	item, err := order.RestoreItem(
		mustRemoteID(t, "item-1"), "Cotton Kurta", 1, 999, 999,
		"KRT-001", "Indigo", "M", "",
	)
	require.NoError(t, err)

	var summary *order.PartnerSummary
	if assignedTo != nil {
		s := order.NewPartnerSummary("Other Partner", "other@shop.example")
		summary = &s
	}

	o, err := order.RestoreOrder(
		mustRemoteID(t, orderID), status, assignedTo, summary,
		address, charges, payment, time.Now().Add(-time.Hour), []order.Item{item},
	)
	require.NoError(t, err)
	return o
}
