// Package bookingrepo maps booking aggregates to the bookings table.
package bookingrepo

import (
	"time"

	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/core/domain/model/rate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingDTO is the row layout of a booking. Timestamps are owned by the
// aggregate, so gorm's automatic time tracking is switched off.
type BookingDTO struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerName  string        `gorm:"size:200;not null"`
	CustomerEmail string        `gorm:"size:320;not null;index"`
	Country       string        `gorm:"not null;index"`
	WeightKg      float64       `gorm:"not null"`
	Quote         QuotedRateDTO `gorm:"embedded;embeddedPrefix:quote_"`
	Status        int           `gorm:"not null;index:idx_bookings_status_created,priority:1"`
	CreatedAt     time.Time     `gorm:"not null;autoCreateTime:false;index:idx_bookings_status_created,priority:2"`
	UpdatedAt     time.Time     `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides gorm's default naming.
func (BookingDTO) TableName() string {
	return "bookings"
}

// QuotedRateDTO is the embedded rate snapshot.
type QuotedRateDTO struct {
	Carrier     string `gorm:"not null"`
	ServiceType string `gorm:"not null"`
	MatchType   string `gorm:"size:16;not null"`
	Zone        string
	WeightTier  float64         `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency    string          `gorm:"size:3;not null"`
}

func fromDomain(b *booking.Booking) BookingDTO {
	q := b.Quote()
	return BookingDTO{
		ID:            b.ID().Bytes(),
		CustomerName:  b.Customer().Name(),
		CustomerEmail: b.Customer().Email(),
		Country:       b.Country(),
		WeightKg:      b.Weight().Kilograms(),
		Quote: QuotedRateDTO{
			Carrier:     q.Carrier,
			ServiceType: q.ServiceType,
			MatchType:   string(q.MatchType),
			Zone:        q.Zone,
			WeightTier:  q.WeightTier,
			Amount:      q.Amount,
			Currency:    q.Currency,
		},
		Status:    int(b.Status()),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomer(dto.CustomerName, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return nil, err
	}

	quote := booking.QuotedRate{
		Carrier:     dto.Quote.Carrier,
		ServiceType: dto.Quote.ServiceType,
		MatchType:   rate.MatchType(dto.Quote.MatchType),
		Zone:        dto.Quote.Zone,
		WeightTier:  dto.Quote.WeightTier,
		Amount:      dto.Quote.Amount,
		Currency:    dto.Quote.Currency,
	}

	return booking.RestoreBooking(
		id,
		customer,
		dto.Country,
		weight,
		quote,
		booking.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
