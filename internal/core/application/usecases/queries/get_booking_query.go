package queries

import (
	"errors"
	"time"

	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetBookingQueryIsNotConstructed = errors.New(
		"GetBookingQuery must be created via NewGetBookingQuery constructor",
	)
)

// GetBookingQuery reads one booking by id.
//
// Example:
//
//	query, err := NewGetBookingQuery(id)
//	if err != nil {
//	    return err
//	}
//	resp, err := NewGetBookingQueryHandler(db).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.ErrNotFound
//	}
type GetBookingQuery struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookingQuery validates the booking id.
func NewGetBookingQuery(bookingID kernel.UUID) (GetBookingQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingQuery{}, err
	}
	return GetBookingQuery{bookingID: bookingID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

// BookingID returns the booking to read.
func (q GetBookingQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// GetBookingQueryResponse is the read model of a booking.
type GetBookingQueryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	CustomerEmail string
	Country       string
	WeightKg      float64
	Carrier       string
	ServiceType   string
	MatchType     string
	Zone          string
	WeightTier    float64
	Amount        decimal.Decimal
	Currency      string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
