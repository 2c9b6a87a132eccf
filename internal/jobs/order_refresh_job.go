package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"partnerconsole/internal/core/application/usecases/commands"
)

// OrderRefreshJob periodically re-fetches the order set for every
// authenticated session, so the cached view partners see stays close to the
// platform's truth between their own actions.
type OrderRefreshJob struct {
	handler commands.RefreshOrdersCommandHandler
	cron    *cron.Cron
	spec    string
	logger  zerolog.Logger
}

// NewOrderRefreshJob creates the periodic order refresh job. The spec is a
// six-field cron expression, e.g. "*/30 * * * * *" for every 30 seconds.
func NewOrderRefreshJob(
	handler commands.RefreshOrdersCommandHandler,
	spec string,
	logger zerolog.Logger,
) *OrderRefreshJob {
	return &OrderRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With().Str("component", "order_refresh_job").Logger(),
	}
}

// Start schedules the refresh on the configured interval.
func (j *OrderRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.Error().Err(err).Msg("order refresh job failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("spec", j.spec).Msg("order refresh job started")
	return nil
}

// Stop stops the order refresh job.
func (j *OrderRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("order refresh job stopped")
}
