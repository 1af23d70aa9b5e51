package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the service.
type JobManager struct {
	autoAssignmentJob *AutoAssignmentJob
}

// NewJobManager wires the background jobs onto their command handlers.
func NewJobManager(
	assignPendingHandler commands.AssignPendingDeliveriesCommandHandler,
	assignmentSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoAssignmentJob: NewAutoAssignmentJob(assignPendingHandler, assignmentSpec, logger),
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.autoAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto assignment job: %w", err)
	}

	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.autoAssignmentJob.Stop()
}
