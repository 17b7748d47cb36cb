// Package jobs provides scheduled background tasks for the pickup wizard service.
//
// Jobs use github.com/robfig/cron/v3 with six-field schedules (seconds first).
//
// # Available Jobs
//
// FlowReaperJob removes wizard flows nobody has touched for FLOW_IDLE_TTL.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reapHandler, "0 * * * * *", 2*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
