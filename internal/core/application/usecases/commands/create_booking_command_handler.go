package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/ports"
)

var (
	// ErrRateNotFound is returned when the requested carrier and service do
	// not price the destination at the booking weight.
	ErrRateNotFound = errors.New("rate not found")
)

// CreateBookingCommandHandler re-quotes the shipment and stores a booking
// holding a snapshot of the chosen rate. The client never supplies the
// price; it is always taken from the current rate data.
//
// Example:
//
//	handler := NewCreateBookingCommandHandler(uowFactory, finder)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrRateNotFound):
//	    log.Println("carrier does not serve this destination")
//	case err != nil:
//	    log.Printf("booking failed: %v", err)
//	}
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	quoter     ports.RateQuoter
	now        func() time.Time
}

// NewCreateBookingCommandHandler creates a handler for booking creation.
func NewCreateBookingCommandHandler(uowFactory BookingUoWFactory, quoter ports.RateQuoter) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		quoter:     quoter,
		now:        time.Now,
	}
}

// Handle quotes the shipment, picks the requested carrier service and
// persists the booking in Created status.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, command CreateBookingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	quote, err := h.quoter.FindRates(command.Country(), command.Weight().Kilograms())
	if err != nil {
		return err
	}

	result, ok := quote.Find(command.Carrier(), command.ServiceType())
	if !ok {
		return fmt.Errorf("%w: %s %s to %s at %.2f kg",
			ErrRateNotFound, command.Carrier(), command.ServiceType(), quote.Country, command.Weight().Kilograms())
	}

	aggregate, err := booking.NewBooking(
		command.BookingID(),
		command.Customer(),
		quote.Country,
		quote.Weight,
		booking.QuotedRateFrom(result),
		h.now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BookingRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
