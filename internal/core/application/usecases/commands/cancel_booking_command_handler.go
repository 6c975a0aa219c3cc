package commands

import (
	"context"
	"time"

	"ratefinder/internal/core/domain/model/booking"
)

// CancelBookingCommandHandler cancels a Created or Confirmed booking.
// Cancelling an already cancelled booking fails with an
// errs.ValueIsInvalidError.
type CancelBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	now        func() time.Time
}

// NewCancelBookingCommandHandler creates a handler for booking cancellation.
func NewCancelBookingCommandHandler(uowFactory BookingUoWFactory) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle loads the booking, cancels it and saves it in one transaction.
func (h CancelBookingCommandHandler) Handle(ctx context.Context, command CancelBookingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return transition(ctx, h.uowFactory, command.BookingID(), func(b *booking.Booking) error {
		return b.Cancel(h.now())
	})
}
