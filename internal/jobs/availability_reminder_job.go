package jobs

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AvailabilityReminderJob re-sends availability requests for orders stuck in
// a pending status. Runs every morning; orders whose last update is older
// than the configured age get the request published again.
type AvailabilityReminderJob struct {
	handler    commands.SendAvailabilityRemindersCommandHandler
	pendingAge time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewAvailabilityReminderJob creates a job that reminds unresponsive parties.
// Uses SendAvailabilityRemindersCommandHandler to run the sweep; pendingAge
// is how long an order may sit untouched in a pending status before a
// reminder goes out.
func NewAvailabilityReminderJob(
	handler commands.SendAvailabilityRemindersCommandHandler,
	pendingAge time.Duration,
	logger *slog.Logger,
) *AvailabilityReminderJob {
	return &AvailabilityReminderJob{
		handler:    handler,
		pendingAge: pendingAge,
		cron:       cron.New(),
		logger:     logger.With("component", "availability_reminder_job"),
	}
}

// Start begins the reminder job to run daily at 09:00.
func (j *AvailabilityReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 9 * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSendAvailabilityRemindersCommand(time.Now().Add(-j.pendingAge))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Availability reminder sweep not constructed", "error", cmdErr)
			return
		}

		sent, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Availability reminder sweep failed", "error", handleErr, "sent", sent)
			return
		}

		if sent > 0 {
			j.logger.InfoContext(ctx, "Availability reminders sent", "count", sent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability reminder job started (running daily at 09:00)")
	return nil
}

// Stop stops the reminder job.
func (j *AvailabilityReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability reminder job stopped")
}
