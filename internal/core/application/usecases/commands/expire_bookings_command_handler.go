package commands

import (
	"context"
)

// ExpireBookingsCommandHandler cancels stale Created bookings in a single
// transaction. It is driven by the booking expiry job.
type ExpireBookingsCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewExpireBookingsCommandHandler creates a handler for booking expiry.
func NewExpireBookingsCommandHandler(uowFactory BookingUoWFactory) ExpireBookingsCommandHandler {
	return ExpireBookingsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of bookings it cancelled. Nothing is written
// when no booking is stale.
func (h ExpireBookingsCommandHandler) Handle(ctx context.Context, command ExpireBookingsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BookingRepository()

	stale, err := repo.GetAllCreatedBefore(ctx, command.Cutoff())
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	expired := 0
	for _, b := range stale {
		if !b.IsExpired(command.Now(), command.TTL()) {
			continue
		}
		if err = b.Cancel(command.Now()); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, b); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
