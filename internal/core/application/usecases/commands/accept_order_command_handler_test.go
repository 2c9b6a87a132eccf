package commands_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partnerconsole/internal/core/application/usecases/commands"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/domain/services"
	"partnerconsole/internal/core/ports"
)

func newAcceptHandler(
	repo *MockSessionRepository,
	client *MockOrderClient,
	cache *MockOrderCache,
) commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(
		repo, client, cache, services.NewOrderAccessPolicy(), zerolog.Nop(),
	)
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actingPartner := testPartner(t, "partner-1")
	consoleSession := authenticatedSession(t, actingPartner)
	orderID := mustRemoteID(t, "order-1")
	partnerID := actingPartner.ID()
	claimed := buildOrder(t, "order-1", order.Confirmed, &partnerID)

	cmd, err := commands.NewAcceptOrderCommand(consoleSession.ID(), orderID)
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()
	mockCache.On("Get", partnerID, orderID).Return(nil).Once()
	mockClient.On("Accept", ctx, "access-token", orderID).Return(claimed, nil).Once()
	mockCache.On("Replace", partnerID, claimed).Once()

	handler := newAcceptHandler(mockRepo, mockClient, mockCache)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, updated.IsAssignedTo(partnerID))
	mockRepo.AssertExpectations(t)
	mockClient.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_LockedByAnotherPartner(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actingPartner := testPartner(t, "partner-1")
	consoleSession := authenticatedSession(t, actingPartner)
	orderID := mustRemoteID(t, "order-1")
	otherID := mustRemoteID(t, "partner-2")
	held := buildOrder(t, "order-1", order.Confirmed, &otherID)

	cmd, err := commands.NewAcceptOrderCommand(consoleSession.ID(), orderID)
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()
	mockCache.On("Get", actingPartner.ID(), orderID).Return(held).Once()

	handler := newAcceptHandler(mockRepo, mockClient, mockCache)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, services.ErrLockedByAnotherPartner)

	var lockedErr *services.LockedByAnotherPartnerError
	require.ErrorAs(t, err, &lockedErr)
	assert.Equal(t, "Other Partner", lockedErr.PartnerLabel)

	// The denial never reached the platform.
	mockClient.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAcceptedBySelf(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actingPartner := testPartner(t, "partner-1")
	consoleSession := authenticatedSession(t, actingPartner)
	orderID := mustRemoteID(t, "order-1")
	partnerID := actingPartner.ID()
	mine := buildOrder(t, "order-1", order.Confirmed, &partnerID)

	cmd, err := commands.NewAcceptOrderCommand(consoleSession.ID(), orderID)
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()
	mockCache.On("Get", partnerID, orderID).Return(mine).Once()

	handler := newAcceptHandler(mockRepo, mockClient, mockCache)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, services.ErrAlreadyAccepted)
	mockClient.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_LostClaimRaceReconcilesCache(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actingPartner := testPartner(t, "partner-1")
	consoleSession := authenticatedSession(t, actingPartner)
	orderID := mustRemoteID(t, "order-1")
	partnerID := actingPartner.ID()
	otherID := mustRemoteID(t, "partner-2")
	won := buildOrder(t, "order-1", order.Confirmed, &otherID)

	cmd, err := commands.NewAcceptOrderCommand(consoleSession.ID(), orderID)
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()
	mockCache.On("Get", partnerID, orderID).Return(nil).Once()
	mockClient.On("Accept", ctx, "access-token", orderID).
		Return(nil, &ports.AlreadyAssignedError{OrderID: orderID}).Once()
	mockClient.On("Get", ctx, "access-token", orderID).Return(won, nil).Once()
	mockCache.On("Replace", partnerID, won).Once()

	handler := newAcceptHandler(mockRepo, mockClient, mockCache)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, ports.ErrAlreadyAssigned)
	mockClient.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_ExpiredTokenPurgesSession(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actingPartner := testPartner(t, "partner-1")
	consoleSession := authenticatedSession(t, actingPartner)
	orderID := mustRemoteID(t, "order-1")

	cmd, err := commands.NewAcceptOrderCommand(consoleSession.ID(), orderID)
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()
	mockCache.On("Get", actingPartner.ID(), orderID).Return(nil).Once()
	mockClient.On("Accept", ctx, "access-token", orderID).Return(nil, ports.ErrSessionExpired).Once()
	mockRepo.On("Save", ctx, mock.MatchedBy(func(s *session.Session) bool {
		return s.State() == session.StateAnonymous
	})).Return(nil).Once()

	handler := newAcceptHandler(mockRepo, mockClient, mockCache)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, ports.ErrSessionExpired)
	assert.False(t, consoleSession.IsAuthenticated())
	mockRepo.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_AnonymousSession(t *testing.T) {
	// Arrange
	ctx := t.Context()
	consoleSession := anonymousSession(t)
	orderID := mustRemoteID(t, "order-1")

	cmd, err := commands.NewAcceptOrderCommand(consoleSession.ID(), orderID)
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockClient := new(MockOrderClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()

	handler := newAcceptHandler(mockRepo, mockClient, mockCache)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, ports.ErrSessionExpired)
	mockClient.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything, mock.Anything)
}
