// Package jobs provides scheduled background tasks for the wholesale engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs only read; they never take row locks or change stock.
//
// # Available Jobs
//
// 1. ReorderAlertJob - logs available products whose units in stock minus
// units on order have reached their reorder level
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reorderQueryHandler, "0 */15 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed check is logged and retried at the next tick. An invalid schedule
// makes StartAll fail.
package jobs
