// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules.
//
// # Available Jobs
//
// StatsSnapshotJob reads the freight_quotes_total and promotions_applied_total
// counters from the Prometheus gatherer and logs their totals. It runs on
// STATS_SCHEDULE, once a minute by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(registry, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
