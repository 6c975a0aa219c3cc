package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBookingQueryHandler reads bookings straight from the bookings table
// without rebuilding the aggregate.
type GetBookingQueryHandler struct {
	db *gorm.DB
}

// NewGetBookingQueryHandler creates a handler for booking reads.
func NewGetBookingQueryHandler(db *gorm.DB) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db}
}

// Handle returns the booking or an errs.ObjectNotFoundError.
func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (GetBookingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_email,
			country,
			weight_kg,
			quote_carrier,
			quote_service_type,
			quote_match_type,
			quote_zone,
			quote_weight_tier,
			quote_amount,
			quote_currency,
			status,
			created_at,
			updated_at
		FROM bookings
		WHERE id = ?
	`, query.BookingID().Bytes()).Row()
	if row.Err() != nil {
		return GetBookingQueryResponse{}, row.Err()
	}

	var (
		resp      GetBookingQueryResponse
		id        uuid.UUID
		amount    decimal.Decimal
		status    int
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(
		&id,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.Country,
		&resp.WeightKg,
		&resp.Carrier,
		&resp.ServiceType,
		&resp.MatchType,
		&resp.Zone,
		&resp.WeightTier,
		&amount,
		&resp.Currency,
		&status,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetBookingQueryResponse{}, errs.NewObjectNotFoundError("booking", query.BookingID().String())
	}
	if err != nil {
		return GetBookingQueryResponse{}, err
	}

	bookingID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetBookingQueryResponse{}, err
	}

	resp.ID = bookingID
	resp.Amount = amount
	resp.Status = booking.Status(status).String()
	resp.CreatedAt = createdAt.UTC()
	resp.UpdatedAt = updatedAt.UTC()

	return resp, nil
}
