package commands

import (
	"errors"

	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/pkg/guard"
)

var (
	ErrConfirmBookingCommandIsNotConstructed = errors.New(
		"ConfirmBookingCommand must be created via NewConfirmBookingCommand constructor",
	)
)

// ConfirmBookingCommand accepts a booking that is still Created.
type ConfirmBookingCommand struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmBookingCommand validates the booking id.
func NewConfirmBookingCommand(bookingID kernel.UUID) (ConfirmBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return ConfirmBookingCommand{}, err
	}
	return ConfirmBookingCommand{bookingID: bookingID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmBookingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmBookingCommandIsNotConstructed)
}

// BookingID returns the booking to confirm.
func (c ConfirmBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
