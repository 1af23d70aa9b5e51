package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"
)

// AutoAssignmentJob sweeps the pending queue on a schedule and hands the
// oldest waiting delivery to the best available agent.
type AutoAssignmentJob struct {
	handler commands.AssignPendingDeliveriesCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewAutoAssignmentJob creates the sweep job. The spec is a six-field cron
// expression with a seconds column.
func NewAutoAssignmentJob(
	handler commands.AssignPendingDeliveriesCommandHandler,
	spec string,
	logger *slog.Logger,
) *AutoAssignmentJob {
	return &AutoAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With("component", "auto_assignment_job"),
	}
}

// Start schedules the sweep. An empty queue or an empty agent pool is the
// normal idle state, not an error worth logging.
func (j *AutoAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingDeliveriesCommand()

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			if !errors.Is(err, commands.ErrNoPendingDeliveries) && !errors.Is(err, services.ErrNoAvailableAgents) {
				j.logger.ErrorContext(ctx, "auto assignment sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "auto assignment job started", "spec", j.spec)
	return nil
}

// Stop stops the sweep.
func (j *AutoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "auto assignment job stopped")
}
