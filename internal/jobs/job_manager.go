package jobs

import (
	"fmt"
	"log/slog"

	"logix/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	automationJob *AutomationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	processNewOrderHandler commands.ProcessNewOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		automationJob: NewAutomationJob(uowFactory, processNewOrderHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.automationJob.Start(); err != nil {
		return fmt.Errorf("failed to start automation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.automationJob.Stop()
}
