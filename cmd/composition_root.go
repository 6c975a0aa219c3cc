package cmd

import (
	"log/slog"

	httpin "ratefinder/internal/adapters/in/http"
	"ratefinder/internal/adapters/out/postgres"
	"ratefinder/internal/core/application/usecases/commands"
	"ratefinder/internal/core/application/usecases/queries"
	"ratefinder/internal/core/ports"
	"ratefinder/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	quoter     ports.RateQuoter
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires the application. gormDB may be nil, in which
// case bookings are disabled.
func NewCompositionRoot(config Config, quoter ports.RateQuoter, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config: config,
		logger: logger,
		quoter: quoter,
		gormDB: gormDB,
	}
	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}
	return root
}

func (c *CompositionRoot) BookingsEnabled() bool {
	return c.gormDB != nil
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateFindRatesQueryHandler() queries.FindRatesQueryHandler {
	return queries.NewFindRatesQueryHandler(c.quoter)
}

func (c *CompositionRoot) CreateGetCarriersQueryHandler() queries.GetCarriersQueryHandler {
	return queries.NewGetCarriersQueryHandler(c.quoter)
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingUoWFactory(), c.quoter)
}

func (c *CompositionRoot) CreateConfirmBookingCommandHandler() commands.ConfirmBookingCommandHandler {
	return commands.NewConfirmBookingCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	return commands.NewCancelBookingCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateExpireBookingsCommandHandler() commands.ExpireBookingsCommandHandler {
	return commands.NewExpireBookingsCommandHandler(c.bookingUoWFactory())
}

// CreateRouter builds the HTTP API with every route mounted.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	var bookings *httpin.BookingHandlers
	if c.BookingsEnabled() {
		bookings = &httpin.BookingHandlers{
			Create:  c.CreateCreateBookingCommandHandler(),
			Get:     c.CreateGetBookingQueryHandler(),
			Confirm: c.CreateConfirmBookingCommandHandler(),
			Cancel:  c.CreateCancelBookingCommandHandler(),
		}
	}

	server := httpin.NewServer(
		c.CreateFindRatesQueryHandler(),
		c.CreateGetCarriersQueryHandler(),
		bookings,
		c.logger,
	)
	return httpin.NewRouter(server, httpin.RouterConfig{AllowOrigins: c.config.CORSAllowOrigins}, c.logger)
}

// CreateJobManager registers the background jobs. Without a database there
// is nothing to schedule.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	jm := jobs.NewJobManager()
	if c.BookingsEnabled() {
		jm.Add("booking expiry", jobs.NewBookingExpiryJob(
			c.CreateExpireBookingsCommandHandler(),
			c.config.BookingExpirySchedule,
			c.config.BookingTTL,
			c.logger,
		))
	}
	return jm
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}
