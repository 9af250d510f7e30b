// Package jobs provides scheduled background tasks for the shipment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the booking service.
//
// # Available Jobs
//
// 1. ShipmentAdvancementJob - Runs every minute to move confirmed shipments
// through the tracking lifecycle (picked_up -> in_transit -> out_for_delivery
// -> delivered)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceShipmentsHandler, logger)
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
// The advancement job uses the cron expression "* * * * *" which means it
// runs every minute. Each run appends at most one tracking event per active
// shipment, so a booking reaches delivered a few minutes after confirmation.
//
// # Error Handling
//
// The advancement job logs all errors as they indicate system issues; a run
// with no confirmed shipments is a normal no-op, not an error.
package jobs
