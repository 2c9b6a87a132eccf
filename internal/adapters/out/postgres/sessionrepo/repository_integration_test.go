package sessionrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"partnerconsole/internal/adapters/out/postgres/sessionrepo"
	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/pkg/errs"
)

// SessionRepositoryIntegrationTestSuite exercises the session repository
// against a real PostgreSQL container.
type SessionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *sessionrepo.GormSessionRepository
}

func (suite *SessionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&sessionrepo.SessionDTO{}))
}

func (suite *SessionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE sessions").Error)
	suite.repository = sessionrepo.NewGormSessionRepository(suite.db)
}

func (suite *SessionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SessionRepositoryIntegrationTestSuite) testPartner() *partner.Partner {
	id, err := kernel.NewRemoteID("partner-1")
	suite.Require().NoError(err)

	p, err := partner.RestorePartner(
		id, "Asha Verma", "asha@shop.example", "partner", true, "+91-9000000001", nil,
	)
	suite.Require().NoError(err)
	return p
}

func (suite *SessionRepositoryIntegrationTestSuite) authenticatedSession() *session.Session {
	now := time.Now()
	s, err := session.RestoreSession(
		kernel.NewUUID(),
		session.StateAuthenticated,
		suite.testPartner(),
		session.RestoreCredential("access-token", now.Add(time.Hour)),
		session.RestoreCredential("refresh-token", now.Add(14*24*time.Hour)),
		now,
	)
	suite.Require().NoError(err)
	return s
}

func (suite *SessionRepositoryIntegrationTestSuite) TestSaveAndGet_RoundTrip() {
	ctx := context.Background()
	stored := suite.authenticatedSession()

	suite.Require().NoError(suite.repository.Save(ctx, stored))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(stored.ID()))
	suite.Equal(session.StateAuthenticated, loaded.State())
	suite.Require().NotNil(loaded.Partner())
	suite.Equal("asha@shop.example", loaded.Partner().Email())
	suite.Equal("access-token", loaded.AccessToken())
	suite.True(loaded.HasCredential(time.Now()))
}

func (suite *SessionRepositoryIntegrationTestSuite) TestSave_UpsertsExistingRow() {
	ctx := context.Background()
	stored := suite.authenticatedSession()

	suite.Require().NoError(suite.repository.Save(ctx, stored))

	stored.Invalidate()
	suite.Require().NoError(suite.repository.Save(ctx, stored))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)

	suite.Equal(session.StateAnonymous, loaded.State())
	suite.Nil(loaded.Partner())
	suite.False(loaded.HasCredential(time.Now()))
}

func (suite *SessionRepositoryIntegrationTestSuite) TestGet_MissingSession() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SessionRepositoryIntegrationTestSuite) TestDelete_MissingSessionIsNotAnError() {
	suite.Require().NoError(suite.repository.Delete(context.Background(), kernel.NewUUID()))
}

func (suite *SessionRepositoryIntegrationTestSuite) TestAllAuthenticated_FiltersByState() {
	ctx := context.Background()

	authenticated := suite.authenticatedSession()
	suite.Require().NoError(suite.repository.Save(ctx, authenticated))

	anonymous, err := session.RestoreSession(
		kernel.NewUUID(), session.StateAnonymous, nil,
		session.Credential{}, session.Credential{}, time.Time{},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, anonymous))

	sessions, err := suite.repository.AllAuthenticated(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(sessions, 1)
	suite.True(sessions[0].ID().IsEqual(authenticated.ID()))
}

func (suite *SessionRepositoryIntegrationTestSuite) TestDeleteExpired_SweepsLapsedSessions() {
	ctx := context.Background()
	past := time.Now().Add(-48 * time.Hour)

	expired, err := session.RestoreSession(
		kernel.NewUUID(),
		session.StateAuthenticated,
		suite.testPartner(),
		session.RestoreCredential("dead-access", past),
		session.RestoreCredential("dead-refresh", past),
		past,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, expired))

	// Backdate the row so it falls outside the grace window.
	suite.Require().NoError(
		suite.db.Exec("UPDATE sessions SET updated_at = ? WHERE id = ?", past, expired.ID().Bytes()).Error,
	)

	live := suite.authenticatedSession()
	suite.Require().NoError(suite.repository.Save(ctx, live))

	removed, err := suite.repository.DeleteExpired(ctx, time.Now())
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.repository.Get(ctx, expired.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, live.ID())
	suite.Require().NoError(err)
}

func TestSessionRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(SessionRepositoryIntegrationTestSuite))
}
