// Package jobs provides scheduled background tasks for the orders service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which starts and stops them as a unit:
//
//	jobManager := jobs.NewJobManager(repo, cancelHandler, ttl, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is StaleOrderCancellationJob, which sweeps Created
// orders once a minute and cancels those idle longer than the configured
// TTL. Cancellation goes through CancelOrderCommandHandler, so it follows
// the same transition rules and event publication as a user-driven cancel.
package jobs
