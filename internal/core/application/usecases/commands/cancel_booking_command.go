package commands

import (
	"errors"

	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/pkg/guard"
)

var (
	ErrCancelBookingCommandIsNotConstructed = errors.New(
		"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
	)
)

// CancelBookingCommand cancels a Created or Confirmed booking.
type CancelBookingCommand struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand validates the booking id.
func NewCancelBookingCommand(bookingID kernel.UUID) (CancelBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return CancelBookingCommand{}, err
	}
	return CancelBookingCommand{bookingID: bookingID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// BookingID returns the booking to cancel.
func (c CancelBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
