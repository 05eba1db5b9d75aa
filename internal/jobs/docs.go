// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which starts and stops them as a group:
//
//	jobManager := jobs.NewJobManager(orderUoWFactory, processNewOrderHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// AutomationJob runs every ten seconds. It loads a bounded batch of orders
// that have no driver and are not flagged for manual handling, then runs one
// automation attempt per order. Attempts that end in a manual-handling
// outcome are normal results, not errors; only infrastructure failures are
// logged at error level.
package jobs
