package cmd

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	consolehttp "partnerconsole/internal/adapters/in/http"
	"partnerconsole/internal/adapters/out/ordercache"
	"partnerconsole/internal/adapters/out/postgres/sessionrepo"
	"partnerconsole/internal/adapters/out/upstream"
	"partnerconsole/internal/core/application/usecases/commands"
	"partnerconsole/internal/core/application/usecases/queries"
	"partnerconsole/internal/core/domain/services"
	"partnerconsole/internal/jobs"
)

// CompositionRoot wires adapters into use case handlers. Shared state (the
// session store and the order cache) is created once and handed to every
// handler that needs it.
type CompositionRoot struct {
	config Config
	logger zerolog.Logger

	sessionRepo *sessionrepo.GormSessionRepository
	orderCache  *ordercache.Cache
	authClient  *upstream.AuthClient
	orderClient *upstream.OrderClient
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger zerolog.Logger) CompositionRoot {
	upstreamClient := upstream.NewClient(config.UpstreamBaseURL, config.UpstreamTimeout, logger)

	return CompositionRoot{
		config:      config,
		logger:      logger,
		sessionRepo: sessionrepo.NewGormSessionRepository(gormDB),
		orderCache:  ordercache.NewCache(),
		authClient:  upstream.NewAuthClient(upstreamClient),
		orderClient: upstream.NewOrderClient(upstreamClient),
	}
}

func (c *CompositionRoot) credentialTTL() commands.CredentialTTL {
	return commands.CredentialTTL{
		Access:  c.config.AccessTokenTTL,
		Refresh: c.config.RefreshTokenTTL,
	}
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	return commands.NewSignInCommandHandler(c.sessionRepo, c.authClient, c.credentialTTL())
}

func (c *CompositionRoot) CreateSignOutCommandHandler() commands.SignOutCommandHandler {
	return commands.NewSignOutCommandHandler(c.sessionRepo, c.authClient, c.orderCache, c.logger)
}

func (c *CompositionRoot) CreateRestoreSessionCommandHandler() commands.RestoreSessionCommandHandler {
	return commands.NewRestoreSessionCommandHandler(c.sessionRepo, c.authClient, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(
		c.sessionRepo, c.orderClient, c.orderCache, services.NewOrderAccessPolicy(), c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.sessionRepo, c.orderClient, c.orderCache, services.NewOrderAccessPolicy(), c.logger,
	)
}

func (c *CompositionRoot) CreateRefreshOrdersCommandHandler() commands.RefreshOrdersCommandHandler {
	return commands.NewRefreshOrdersCommandHandler(c.sessionRepo, c.orderClient, c.orderCache, c.logger)
}

func (c *CompositionRoot) CreatePurgeExpiredSessionsCommandHandler() commands.PurgeExpiredSessionsCommandHandler {
	return commands.NewPurgeExpiredSessionsCommandHandler(c.sessionRepo, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.sessionRepo, c.orderClient, c.orderCache, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.sessionRepo, c.orderClient, c.orderCache, c.logger)
}

func (c *CompositionRoot) CreateGetPartnerDashboardQueryHandler() queries.GetPartnerDashboardQueryHandler {
	return queries.NewGetPartnerDashboardQueryHandler(c.sessionRepo, c.orderClient, c.logger)
}

func (c *CompositionRoot) CreateGetShippingLabelQueryHandler() queries.GetShippingLabelQueryHandler {
	return queries.NewGetShippingLabelQueryHandler(c.sessionRepo, c.orderClient, c.orderCache, c.logger)
}

// CreateServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateServer() *consolehttp.Server {
	return consolehttp.NewServer(
		c.sessionRepo,
		services.NewAccessGuard(),
		c.config.MaxProfileAge,
		c.logger,
		c.CreateSignInCommandHandler(),
		c.CreateSignOutCommandHandler(),
		c.CreateRestoreSessionCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetPartnerDashboardQueryHandler(),
		c.CreateGetShippingLabelQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshOrdersCommandHandler(),
		c.CreatePurgeExpiredSessionsCommandHandler(),
		c.config.OrderRefreshSpec,
		c.config.SessionSweepSpec,
		c.logger,
	)
}
