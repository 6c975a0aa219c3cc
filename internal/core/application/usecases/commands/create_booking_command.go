package commands

import (
	"errors"
	"strings"

	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/pkg/errs"
	"ratefinder/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
)

// CreateBookingCommand requests a booking for one carrier service at the
// rate the finder quotes right now.
//
// Example:
//
//	bookingID := kernel.NewUUID()
//	cmd, err := NewCreateBookingCommand(bookingID, "Germany", 2.2, "DHL", "Express",
//		"Asha Rao", "asha@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid booking request: %w", err)
//	}
//
//	handler := NewCreateBookingCommandHandler(uowFactory, finder)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create booking: %w", err)
//	}
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID   kernel.UUID
	country     string
	weight      kernel.Weight
	carrier     string
	serviceType string
	customer    booking.Customer

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand validates every field of a booking request.
// The country is kept as typed; the handler normalizes it while quoting.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	country string,
	weightKg float64,
	carrier, serviceType string,
	customerName, customerEmail string,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setCountry(country),
		cmd.setWeight(weightKg),
		cmd.setCarrier(carrier),
		cmd.setServiceType(serviceType),
		cmd.setCustomer(customerName, customerEmail),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) BookingID() kernel.UUID     { return c.bookingID }
func (c CreateBookingCommand) Country() string            { return c.country }
func (c CreateBookingCommand) Weight() kernel.Weight      { return c.weight }
func (c CreateBookingCommand) Carrier() string            { return c.carrier }
func (c CreateBookingCommand) ServiceType() string        { return c.serviceType }
func (c CreateBookingCommand) Customer() booking.Customer { return c.customer }

func (c *CreateBookingCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bookingID = id
	return nil
}

func (c *CreateBookingCommand) setCountry(country string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	c.country = country
	return nil
}

func (c *CreateBookingCommand) setWeight(kg float64) error {
	w, err := kernel.NewWeight(kg)
	if err != nil {
		return err
	}
	c.weight = w
	return nil
}

func (c *CreateBookingCommand) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	c.carrier = carrier
	return nil
}

func (c *CreateBookingCommand) setServiceType(serviceType string) error {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return errs.NewValueIsRequiredError("service type")
	}
	c.serviceType = serviceType
	return nil
}

func (c *CreateBookingCommand) setCustomer(name, email string) error {
	customer, err := booking.NewCustomer(name, email)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}
