// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. StaffAssignmentJob - Runs every second to put the least-loaded staff member on the oldest waiting order
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(autoAssignStaffHandler, logger)
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
// The assignment job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps waiting orders from piling up between
// front-desk interactions.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no waiting orders, no available staff)
// - Failed job starts will stop any already running jobs
package jobs
