package http

import (
	"errors"
	"net/http"

	"ratefinder/internal/core/application/usecases/commands"
	"ratefinder/internal/core/application/usecases/queries"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/core/domain/services"
	"ratefinder/internal/generated/servers"
	"ratefinder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateBooking handles POST /api/bookings. The shipment is quoted again
// and the matching carrier and service are stored with the booking.
func (s *Server) CreateBooking(c echo.Context) error {
	if !s.bookingsEnabled() {
		return bookingsDisabled(c)
	}

	var req servers.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(id, req.Country, req.Weight,
		req.Carrier, req.ServiceType, req.CustomerName, req.CustomerEmail)
	if err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, "Invalid booking data: "+err.Error())
	}

	ctx := c.Request().Context()
	if err = s.bookings.Create.Handle(ctx, cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrRateNotFound):
			return respondError(c, http.StatusUnprocessableEntity, codeRateNotFound, err.Error())
		case errors.Is(err, services.ErrInvalidInput), errors.Is(err, errs.ErrValueIsInvalid):
			return respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		}
		s.logger.ErrorContext(ctx, "Failed to create booking", "booking_id", id.String(), "error", err)
		return respondError(c, http.StatusInternalServerError, codeInternal, "Failed to create booking")
	}

	return s.renderBooking(c, http.StatusCreated, id)
}

// GetBooking handles GET /api/bookings/:id.
func (s *Server) GetBooking(c echo.Context, bookingID servers.BookingID) error {
	if !s.bookingsEnabled() {
		return bookingsDisabled(c)
	}

	id, err := kernel.UUIDFrom(bookingID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}

	return s.renderBooking(c, http.StatusOK, id)
}

// ConfirmBooking handles POST /api/bookings/:id/confirm.
func (s *Server) ConfirmBooking(c echo.Context, bookingID servers.BookingID) error {
	if !s.bookingsEnabled() {
		return bookingsDisabled(c)
	}

	id, err := kernel.UUIDFrom(bookingID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}
	cmd, err := commands.NewConfirmBookingCommand(id)
	if err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}

	if err = s.bookings.Confirm.Handle(c.Request().Context(), cmd); err != nil {
		return s.transitionError(c, id, err)
	}
	return s.renderBooking(c, http.StatusOK, id)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (s *Server) CancelBooking(c echo.Context, bookingID servers.BookingID) error {
	if !s.bookingsEnabled() {
		return bookingsDisabled(c)
	}

	id, err := kernel.UUIDFrom(bookingID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}
	cmd, err := commands.NewCancelBookingCommand(id)
	if err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}

	if err = s.bookings.Cancel.Handle(c.Request().Context(), cmd); err != nil {
		return s.transitionError(c, id, err)
	}
	return s.renderBooking(c, http.StatusOK, id)
}

func (s *Server) renderBooking(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetBookingQuery(id)
	if err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}

	b, err := s.bookings.Get.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return respondError(c, http.StatusNotFound, codeNotFound, "Booking not found")
		}
		s.logger.ErrorContext(c.Request().Context(), "Failed to read booking", "booking_id", id.String(), "error", err)
		return respondError(c, http.StatusInternalServerError, codeInternal, "Failed to retrieve booking")
	}

	return c.JSON(status, toBooking(b))
}

func (s *Server) transitionError(c echo.Context, id kernel.UUID, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(c, http.StatusNotFound, codeNotFound, "Booking not found")
	case errors.Is(err, errs.ErrValueIsInvalid):
		return respondError(c, http.StatusConflict, codeInvalidTransition, err.Error())
	}
	s.logger.ErrorContext(c.Request().Context(), "Failed to update booking", "booking_id", id.String(), "error", err)
	return respondError(c, http.StatusInternalServerError, codeInternal, "Failed to update booking")
}

func bookingsDisabled(c echo.Context) error {
	return respondError(c, http.StatusServiceUnavailable, codeBookingsDisabled, "Bookings are not configured")
}
