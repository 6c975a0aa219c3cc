// Package jobs provides scheduled background tasks for the rate service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with seconds
// enabled.
//
// # Available Jobs
//
// 1. BookingExpiryJob - cancels bookings still in Created status after the
// booking TTL. Runs on BOOKING_EXPIRY_SCHEDULE, once a minute by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager()
//	jobManager.Add("booking expiry", jobs.NewBookingExpiryJob(handler, "@every 1m", 24*time.Hour, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A job that fails
// to start stops the jobs started before it.
package jobs
