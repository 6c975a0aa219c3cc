package booking

import (
	"errors"
	"time"

	"ratefinder/internal/core/domain/model/country"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/pkg/errs"
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking was not created
	// through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
)

// Booking is the aggregate root for a reserved shipment.
//
// Booking follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid customer, destination and weight
//   - The quoted rate is a priced snapshot and never changes
//   - Status transitions follow the rules of Status
type Booking struct {
	id       kernel.UUID
	customer Customer

	// country is the canonical destination the rate was quoted for
	country string
	weight  kernel.Weight
	quote   QuotedRate

	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewBooking creates a booking in Created status.
//
// Parameters:
//   - id: unique identifier
//   - customer: validated customer
//   - destination: canonical destination country
//   - weight: the weight the rate was quoted for
//   - quote: snapshot of the chosen MatchResult
//   - now: creation time
//
// Example:
//
//	customer, _ := booking.NewCustomer("Asha Rao", "asha@example.com")
//	result, _ := quote.Find("DHL", "Express")
//	b, err := booking.NewBooking(kernel.NewUUID(), customer, quote.Country, quote.Weight,
//		booking.QuotedRateFrom(result), time.Now())
func NewBooking(id kernel.UUID, customer Customer, destination string, weight kernel.Weight, quote QuotedRate, now time.Time) (*Booking, error) {
	b := &Booking{
		status:        Created,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomer(customer),
		b.setCountry(destination),
		b.setWeight(weight),
		b.setQuote(quote),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking rebuilds a booking read from persistence.
func RestoreBooking(
	id kernel.UUID,
	customer Customer,
	destination string,
	weight kernel.Weight,
	quote QuotedRate,
	status Status,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	b := &Booking{
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomer(customer),
		b.setCountry(destination),
		b.setWeight(weight),
		b.setQuote(quote),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	b.status = status

	return b, nil
}

// Validate ensures the booking was built by a constructor.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// IsEqual compares bookings by identifier.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Booking) ID() kernel.UUID       { return b.id }
func (b *Booking) Customer() Customer    { return b.customer }
func (b *Booking) Country() string       { return b.country }
func (b *Booking) Weight() kernel.Weight { return b.weight }
func (b *Booking) Quote() QuotedRate     { return b.quote }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

// Confirm accepts a Created booking.
func (b *Booking) Confirm(now time.Time) error {
	next, err := b.status.Confirm()
	if err != nil {
		return err
	}
	b.status = next
	b.updatedAt = now.UTC()
	return nil
}

// Cancel cancels a Created or Confirmed booking.
func (b *Booking) Cancel(now time.Time) error {
	next, err := b.status.Cancel()
	if err != nil {
		return err
	}
	b.status = next
	b.updatedAt = now.UTC()
	return nil
}

// IsExpired reports whether the booking is still Created after ttl.
func (b *Booking) IsExpired(now time.Time, ttl time.Duration) bool {
	return b.status == Created && now.Sub(b.createdAt) >= ttl
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setCustomer(c Customer) error {
	if c.name == "" || c.email == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	b.customer = c
	return nil
}

func (b *Booking) setCountry(destination string) error {
	folded := country.Fold(destination)
	if folded == "" {
		return errs.NewValueIsRequiredError("country")
	}
	b.country = folded
	return nil
}

func (b *Booking) setWeight(w kernel.Weight) error {
	if err := w.Validate(); err != nil {
		return err
	}
	b.weight = w
	return nil
}

func (b *Booking) setQuote(q QuotedRate) error {
	if err := q.Validate(); err != nil {
		return err
	}
	b.quote = q
	return nil
}
