// Package jobs provides scheduled background tasks for the bookstore.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a leading
// seconds field in every schedule.
//
// # Available Jobs
//
// LowStockAlertJob lists active books whose stock is at or below a threshold
// and sends one admin alert through the notification dispatcher. It runs
// daily at 08:00 unless LOW_STOCK_CRON overrides the schedule.
//
// # Usage
//
//	lowStock := jobs.NewLowStockAlertJob(lowStockHandler, dispatcher, 5, "", logger)
//	jobManager := jobs.NewJobManager(lowStock)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Failed job starts stop
// any already running jobs.
package jobs
