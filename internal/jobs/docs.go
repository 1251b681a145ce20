// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3, and are coordinated
// through JobManager:
//
//	jobManager := jobs.NewJobManager(pendingOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// 1. PendingOrdersJob - periodically reports the orders still awaiting
// dispatch, giving operators a heartbeat of the outstanding workload.
package jobs
