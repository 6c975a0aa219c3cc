package commands

import (
	"context"
	"time"

	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/domain/model/kernel"
)

// ConfirmBookingCommandHandler moves a booking from Created to Confirmed.
// Confirming any other status fails with an errs.ValueIsInvalidError.
type ConfirmBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	now        func() time.Time
}

// NewConfirmBookingCommandHandler creates a handler for booking confirmation.
func NewConfirmBookingCommandHandler(uowFactory BookingUoWFactory) ConfirmBookingCommandHandler {
	return ConfirmBookingCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle loads the booking, confirms it and saves it in one transaction.
func (h ConfirmBookingCommandHandler) Handle(ctx context.Context, command ConfirmBookingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return transition(ctx, h.uowFactory, command.BookingID(), func(b *booking.Booking) error {
		return b.Confirm(h.now())
	})
}

// transition applies change to one booking inside a unit of work.
func transition(ctx context.Context, factory BookingUoWFactory, id kernel.UUID, change func(*booking.Booking) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BookingRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = change(aggregate); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
