package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"partnerconsole/internal/core/application/usecases/commands"
)

// SessionSweeperJob periodically deletes sessions whose credentials have all
// lapsed, keeping the sessions table from accumulating dead rows.
type SessionSweeperJob struct {
	handler commands.PurgeExpiredSessionsCommandHandler
	cron    *cron.Cron
	spec    string
	logger  zerolog.Logger
}

// NewSessionSweeperJob creates the expired session sweeper. The spec is a
// six-field cron expression, e.g. "0 0 * * * *" for hourly.
func NewSessionSweeperJob(
	handler commands.PurgeExpiredSessionsCommandHandler,
	spec string,
	logger zerolog.Logger,
) *SessionSweeperJob {
	return &SessionSweeperJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With().Str("component", "session_sweeper_job").Logger(),
	}
}

// Start schedules the sweep on the configured interval.
func (j *SessionSweeperJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewPurgeExpiredSessionsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.Error().Err(err).Msg("session sweep failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("spec", j.spec).Msg("session sweeper started")
	return nil
}

// Stop stops the session sweeper.
func (j *SessionSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("session sweeper stopped")
}
