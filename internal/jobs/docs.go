// Package jobs provides scheduled background tasks for the delivery desk.
//
// Jobs are cron-based (github.com/robfig/cron/v3, with a seconds field) and
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(getDeliveriesHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DeliveryTotalJob logs the "Total Deliveries" counter and the edit cursor on
// every tick of its schedule (TOTAL_REPORT_SCHEDULE, every minute by default).
//
// # Error Handling
//
// A failing tick is logged and the job keeps running. An invalid schedule
// makes StartAll fail.
package jobs
