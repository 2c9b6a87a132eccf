package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/ports"
)

// Mock implementations for testing.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) AllAuthenticated(ctx context.Context) ([]*session.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*session.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderClient struct {
	mock.Mock
}

func (m *MockOrderClient) List(ctx context.Context, accessToken string) ([]*order.Order, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) Get(ctx context.Context, accessToken string, orderID kernel.RemoteID) (*order.Order, error) {
	args := m.Called(ctx, accessToken, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) Accept(ctx context.Context, accessToken string, orderID kernel.RemoteID) (*order.Order, error) {
	args := m.Called(ctx, accessToken, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) UpdateStatus(
	ctx context.Context,
	accessToken string,
	orderID kernel.RemoteID,
	status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, accessToken, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) Dashboard(ctx context.Context, accessToken string) (*ports.PartnerDashboard, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PartnerDashboard), args.Error(1)
}

type MockOrderCache struct {
	mock.Mock
}

func (m *MockOrderCache) ReplaceAll(partnerID kernel.RemoteID, orders []*order.Order) {
	m.Called(partnerID, orders)
}

func (m *MockOrderCache) Replace(partnerID kernel.RemoteID, o *order.Order) {
	m.Called(partnerID, o)
}

func (m *MockOrderCache) Get(partnerID kernel.RemoteID, orderID kernel.RemoteID) *order.Order {
	args := m.Called(partnerID, orderID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*order.Order)
}

func (m *MockOrderCache) All(partnerID kernel.RemoteID) []*order.Order {
	args := m.Called(partnerID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*order.Order)
}

func (m *MockOrderCache) Drop(partnerID kernel.RemoteID) {
	m.Called(partnerID)
}

// Test fixtures.

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
