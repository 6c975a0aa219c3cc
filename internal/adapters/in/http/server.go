package http

import (
	"context"
	"log/slog"
	"strings"

	"ratefinder/internal/core/application/usecases/commands"
	"ratefinder/internal/core/application/usecases/queries"
	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type (
	FindRatesHandler interface {
		Handle(ctx context.Context, query queries.FindRatesQuery) (rate.Quote, error)
	}

	GetCarriersHandler interface {
		Handle(ctx context.Context, query queries.GetCarriersQuery) (queries.GetCarriersQueryResponse, error)
	}

	GetBookingHandler interface {
		Handle(ctx context.Context, query queries.GetBookingQuery) (queries.GetBookingQueryResponse, error)
	}

	CreateBookingHandler interface {
		Handle(ctx context.Context, command commands.CreateBookingCommand) error
	}

	ConfirmBookingHandler interface {
		Handle(ctx context.Context, command commands.ConfirmBookingCommand) error
	}

	CancelBookingHandler interface {
		Handle(ctx context.Context, command commands.CancelBookingCommand) error
	}
)

// BookingHandlers groups the booking use cases. They need a database; a
// server built without them answers booking routes with 503.
type BookingHandlers struct {
	Create  CreateBookingHandler
	Get     GetBookingHandler
	Confirm ConfirmBookingHandler
	Cancel  CancelBookingHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server maps HTTP requests onto the application use cases.
type Server struct {
	// Query handlers
	findRatesHandler   FindRatesHandler
	getCarriersHandler GetCarriersHandler

	// Booking use cases, nil when bookings are disabled
	bookings *BookingHandlers

	logger *slog.Logger
}

// NewServer creates a server. bookings may be nil.
func NewServer(
	findRatesHandler FindRatesHandler,
	getCarriersHandler GetCarriersHandler,
	bookings *BookingHandlers,
	logger *slog.Logger,
) *Server {
	return &Server{
		findRatesHandler:   findRatesHandler,
		getCarriersHandler: getCarriersHandler,
		bookings:           bookings,
		logger:             logger.With("component", "http_server"),
	}
}

func (s *Server) bookingsEnabled() bool {
	return s.bookings != nil
}

// skipDisabledBookings lets booking requests through to their handler
// unvalidated when bookings are disabled, so that they answer 503.
func (s *Server) skipDisabledBookings(c echo.Context) bool {
	return !s.bookingsEnabled() && strings.HasPrefix(c.Path(), "/api/bookings")
}
