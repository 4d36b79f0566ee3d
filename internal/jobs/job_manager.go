package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reorderAlertJob *ReorderAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(reorderQuery ReorderQuery, reorderSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		reorderAlertJob: NewReorderAlertJob(reorderQuery, reorderSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reorderAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start reorder alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reorderAlertJob.Stop()
}
