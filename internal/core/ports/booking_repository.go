// Package ports defines the contracts between the rate and booking core and
// the infrastructure around it. Adapters implement these interfaces; use
// cases depend on nothing else.
package ports

import (
	"context"
	"time"

	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking aggregate.
	// The booking must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists the status change of an existing booking.
	// Returns errs.ObjectNotFoundError when the booking is missing.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by its identifier.
	// Returns errs.ObjectNotFoundError when no booking has that id.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetAllCreatedBefore returns bookings still in Created status whose
	// creation time is strictly before cutoff, oldest first.
	//
	// Example:
	//   stale, err := repo.GetAllCreatedBefore(ctx, time.Now().Add(-24*time.Hour))
	//   if err != nil {
	//       return fmt.Errorf("failed to list stale bookings: %w", err)
	//   }
	GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*booking.Booking, error)
}
