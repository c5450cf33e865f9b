package jobs

import (
	"context"
	"errors"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaffAssignmentJob manages the scheduled assignment of staff to orders.
// Runs every second to match waiting orders with the least-loaded staff member.
type StaffAssignmentJob struct {
	handler commands.AutoAssignStaffCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaffAssignmentJob creates a new job for assigning staff.
// Uses AutoAssignStaffCommandHandler to process one assignment every second.
func NewStaffAssignmentJob(handler commands.AutoAssignStaffCommandHandler, logger *slog.Logger) *StaffAssignmentJob {
	return &StaffAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "staff_assignment_job"),
	}
}

// Start begins the staff assignment job to run every second.
func (j *StaffAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignStaffCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoAvailableStaffFound) {
				j.logger.ErrorContext(ctx, "Staff assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Staff assignment job started (running every second)")
	return nil
}

// Stop stops the staff assignment job.
func (j *StaffAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Staff assignment job stopped")
}
