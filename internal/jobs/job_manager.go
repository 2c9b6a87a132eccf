package jobs

import (
	"fmt"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRefreshJob   *OrderRefreshJob
	sessionSweeperJob *SessionSweeperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	refreshOrdersHandler commands.RefreshOrdersCommandHandler,
	purgeSessionsHandler commands.PurgeExpiredSessionsCommandHandler,
	orderRefreshSpec string,
	sessionSweepSpec string,
	logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		orderRefreshJob:   NewOrderRefreshJob(refreshOrdersHandler, orderRefreshSpec, logger),
		sessionSweeperJob: NewSessionSweeperJob(purgeSessionsHandler, sessionSweepSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}

	if err := jm.sessionSweeperJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderRefreshJob.Stop()
		return fmt.Errorf("failed to start session sweeper: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRefreshJob.Stop()
	jm.sessionSweeperJob.Stop()
}
