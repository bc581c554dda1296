// Package jobs provides scheduled background tasks for the shipping service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CacheReportJob - publishes the number of memoised conversion rates per kind
// to the metrics port and the log, on DefaultCacheReportSchedule unless configured.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.NewCacheReportJob(registry, recorder, "@every 30s", logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A job that fails to start stops the jobs already running.
package jobs
