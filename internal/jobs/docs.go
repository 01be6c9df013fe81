// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the booking portal needs.
//
// # Available Jobs
//
// 1. AvailabilityReminderJob - Runs daily to re-send availability requests for orders stuck in a pending status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sendRemindersHandler, 48*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job uses the cron expression "0 9 * * *" and runs once a day
// at 09:00. The core itself stays request-served: no job schedules orders or
// computes groups in the background, reminders only nudge unresponsive
// parties.
//
// # Error Handling
//
// - A failed sweep is logged and retried on the next scheduled run
// - Failed job starts will stop any already running jobs
package jobs
