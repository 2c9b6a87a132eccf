package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

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

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, email string, password string) (*partner.Partner, ports.Tokens, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, ports.Tokens{}, args.Error(2)
	}
	return args.Get(0).(*partner.Partner), args.Get(1).(ports.Tokens), args.Error(2)
}

func (m *MockAuthClient) Profile(ctx context.Context, accessToken string) (*partner.Partner, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockAuthClient) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
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
