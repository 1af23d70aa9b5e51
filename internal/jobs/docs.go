// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with a seconds
// column enabled.
//
// # Available Jobs
//
// 1. AutoAssignmentJob - sweeps the pending delivery queue and assigns the
// oldest waiting delivery to the most recently active available agent.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignPendingHandler, "*/10 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment sweep ignores the expected idle conditions (no pending
// deliveries, no available agents) and logs everything else.
package jobs
