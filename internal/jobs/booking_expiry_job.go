package jobs

import (
	"context"
	"log/slog"
	"time"

	"ratefinder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule runs the expiry sweep once a minute.
const DefaultExpirySchedule = "@every 1m"

// ExpireBookingsHandler cancels stale bookings and reports how many.
type ExpireBookingsHandler interface {
	Handle(ctx context.Context, command commands.ExpireBookingsCommand) (int, error)
}

// BookingExpiryJob cancels bookings left in Created status longer than the
// TTL, on a cron schedule.
type BookingExpiryJob struct {
	handler  ExpireBookingsHandler
	schedule string
	ttl      time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBookingExpiryJob creates the job. An empty schedule falls back to
// DefaultExpirySchedule. The schedule accepts six-field cron expressions
// with seconds and descriptors such as "@every 30s".
func NewBookingExpiryJob(handler ExpireBookingsHandler, schedule string, ttl time.Duration, logger *slog.Logger) *BookingExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}
	return &BookingExpiryJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "booking_expiry_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *BookingExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Booking expiry job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// RunOnce performs a single sweep.
func (j *BookingExpiryJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpireBookingsCommand(j.now(), j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid expiry settings", "error", err)
		return 0, err
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Booking expiry job failed", "error", err)
		return 0, err
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Stale bookings cancelled", "count", expired, "cutoff", cmd.Cutoff())
	}
	return expired, nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *BookingExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Booking expiry job stopped")
}
