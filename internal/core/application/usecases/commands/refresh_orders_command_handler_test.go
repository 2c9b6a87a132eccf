package commands_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partnerconsole/internal/core/application/usecases/commands"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/ports"
)

func TestRefreshOrdersCommandHandler_Handle_RefreshesEachPartner(t *testing.T) {
	// Arrange
	ctx := t.Context()
	firstPartner := testPartner(t, "partner-1")
	secondPartner := testPartner(t, "partner-2")
	firstSession := authenticatedSession(t, firstPartner)
	secondSession := authenticatedSession(t, secondPartner)

	partnerID := firstPartner.ID()
	orders := []*order.Order{buildOrder(t, "order-1", order.Confirmed, &partnerID)}

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("AllAuthenticated", ctx).Return([]*session.Session{firstSession, secondSession}, nil).Once()
	mockClient.On("List", ctx, "access-token").Return(orders, nil).Twice()
	mockCache.On("ReplaceAll", firstPartner.ID(), orders).Once()
	mockCache.On("ReplaceAll", secondPartner.ID(), orders).Once()

	handler := commands.NewRefreshOrdersCommandHandler(mockRepo, mockClient, mockCache, zerolog.Nop())

	// Act
	err := handler.Handle(ctx, commands.NewRefreshOrdersCommand())

	// Assert
	require.NoError(t, err)
	mockCache.AssertExpectations(t)
}

func TestRefreshOrdersCommandHandler_Handle_ExpiredSessionIsPurged(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actingPartner := testPartner(t, "partner-1")
	consoleSession := authenticatedSession(t, actingPartner)

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("AllAuthenticated", ctx).Return([]*session.Session{consoleSession}, nil).Once()
	mockClient.On("List", ctx, "access-token").Return(nil, ports.ErrSessionExpired).Once()
	mockRepo.On("Save", ctx, mock.MatchedBy(func(s *session.Session) bool {
		return s.State() == session.StateAnonymous
	})).Return(nil).Once()

	handler := commands.NewRefreshOrdersCommandHandler(mockRepo, mockClient, mockCache, zerolog.Nop())

	// Act
	err := handler.Handle(ctx, commands.NewRefreshOrdersCommand())

	// Assert
	require.NoError(t, err)
	mockCache.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestRefreshOrdersCommandHandler_Handle_ListFailureKeepsCache(t *testing.T) {
	// Arrange
	ctx := t.Context()
	consoleSession := authenticatedSession(t, testPartner(t, "partner-1"))

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("AllAuthenticated", ctx).Return([]*session.Session{consoleSession}, nil).Once()
	mockClient.On("List", ctx, "access-token").
		Return(nil, &ports.NetworkError{Op: "list", Cause: errors.New("timeout")}).Once()

	handler := commands.NewRefreshOrdersCommandHandler(mockRepo, mockClient, mockCache, zerolog.Nop())

	// Act
	err := handler.Handle(ctx, commands.NewRefreshOrdersCommand())

	// Assert
	require.NoError(t, err)
	mockCache.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestPurgeExpiredSessionsCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()

	mockRepo := new(MockSessionRepository)
	mockRepo.On("DeleteExpired", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once()

	handler := commands.NewPurgeExpiredSessionsCommandHandler(mockRepo, zerolog.Nop())

	// Act
	err := handler.Handle(ctx, commands.NewPurgeExpiredSessionsCommand())

	// Assert
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
