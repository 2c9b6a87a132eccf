package commands_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partnerconsole/internal/core/application/usecases/commands"
	"partnerconsole/internal/core/domain/model/session"
)

func TestSignOutCommandHandler_Handle_RevokesAndClears(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actingPartner := testPartner(t, "partner-1")
	consoleSession := authenticatedSession(t, actingPartner)

	cmd, err := commands.NewSignOutCommand(consoleSession.ID())
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockAuth := new(MockAuthClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()
	mockAuth.On("Logout", ctx, "refresh-token").Return(nil).Once()
	mockCache.On("Drop", actingPartner.ID()).Once()
	mockRepo.On("Save", ctx, mock.MatchedBy(func(s *session.Session) bool {
		return s.State() == session.StateAnonymous
	})).Return(nil).Once()

	handler := commands.NewSignOutCommandHandler(mockRepo, mockAuth, mockCache, zerolog.Nop())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, session.StateAnonymous, consoleSession.State())
	mockRepo.AssertExpectations(t)
	mockAuth.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestSignOutCommandHandler_Handle_RevokeFailureStillClearsLocally(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actingPartner := testPartner(t, "partner-1")
	consoleSession := authenticatedSession(t, actingPartner)

	cmd, err := commands.NewSignOutCommand(consoleSession.ID())
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockAuth := new(MockAuthClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()
	mockAuth.On("Logout", ctx, "refresh-token").Return(errors.New("upstream down")).Once()
	mockCache.On("Drop", actingPartner.ID()).Once()
	mockRepo.On("Save", ctx, mock.AnythingOfType("*session.Session")).Return(nil).Once()

	handler := commands.NewSignOutCommandHandler(mockRepo, mockAuth, mockCache, zerolog.Nop())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, session.StateAnonymous, consoleSession.State())
	mockRepo.AssertExpectations(t)
}

func TestSignOutCommandHandler_Handle_AnonymousSessionIsNoOpRevoke(t *testing.T) {
	// Arrange
	ctx := t.Context()
	consoleSession := anonymousSession(t)

	cmd, err := commands.NewSignOutCommand(consoleSession.ID())
	require.NoError(t, err)

	mockRepo := new(MockSessionRepository)
	mockAuth := new(MockAuthClient)
	mockCache := new(MockOrderCache)

	mockRepo.On("Get", ctx, consoleSession.ID()).Return(consoleSession, nil).Once()
	mockRepo.On("Save", ctx, consoleSession).Return(nil).Once()

	handler := commands.NewSignOutCommandHandler(mockRepo, mockAuth, mockCache, zerolog.Nop())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockAuth.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Drop", mock.Anything)
}
