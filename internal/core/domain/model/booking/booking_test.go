package booking_test

import (
	"testing"
	"time"

	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 1, 23, 10, 0, 0, 0, time.UTC)

func validQuote() booking.QuotedRate {
	return booking.QuotedRateFrom(rate.MatchResult{
		Carrier:     "DHL",
		ServiceType: "Express",
		MatchType:   rate.ZoneBased,
		Zone:        "7",
		WeightTier:  2.5,
		FinalRate:   decimal.NewFromInt(950),
		Currency:    "INR",
	})
}

func validCustomer(t *testing.T) booking.Customer {
	t.Helper()
	c, err := booking.NewCustomer("Asha Rao", "asha@example.com")
	require.NoError(t, err)
	return c
}

func newBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(kernel.NewUUID(), validCustomer(t), "Germany", kernel.MustNewWeight(2.2), validQuote(), createdAt)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("should create booking in Created status", func(t *testing.T) {
		id := kernel.NewUUID()

		b, err := booking.NewBooking(id, validCustomer(t), " germany ", kernel.MustNewWeight(2.2), validQuote(), createdAt)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(id))
		assert.Equal(t, "GERMANY", b.Country())
		assert.Equal(t, booking.Created, b.Status())
		assert.Equal(t, "950", b.Quote().Amount.String())
		assert.Equal(t, rate.ZoneBased, b.Quote().MatchType)
		assert.Equal(t, createdAt, b.CreatedAt())
		assert.Equal(t, createdAt, b.UpdatedAt())
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		b, err := booking.NewBooking(kernel.UUID{}, booking.Customer{}, "", kernel.Weight{}, booking.QuotedRate{}, createdAt)

		require.Error(t, err)
		assert.Nil(t, b)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrWeightIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject unpriced quote", func(t *testing.T) {
		q := validQuote()
		q.Amount = decimal.Zero

		_, err := booking.NewBooking(kernel.NewUUID(), validCustomer(t), "Germany", kernel.MustNewWeight(1), q, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreBooking(t *testing.T) {
	t.Run("keeps persisted status and times", func(t *testing.T) {
		updated := createdAt.Add(time.Hour)

		b, err := booking.RestoreBooking(kernel.NewUUID(), validCustomer(t), "GERMANY", kernel.MustNewWeight(2.2),
			validQuote(), booking.Confirmed, createdAt, updated)

		require.NoError(t, err)
		assert.Equal(t, booking.Confirmed, b.Status())
		assert.Equal(t, updated, b.UpdatedAt())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := booking.RestoreBooking(kernel.NewUUID(), validCustomer(t), "GERMANY", kernel.MustNewWeight(2.2),
			validQuote(), booking.Unknown, createdAt, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBooking_Lifecycle(t *testing.T) {
	t.Run("confirm then cancel", func(t *testing.T) {
		b := newBooking(t)

		require.NoError(t, b.Confirm(createdAt.Add(time.Minute)))
		assert.Equal(t, booking.Confirmed, b.Status())
		assert.Equal(t, createdAt.Add(time.Minute), b.UpdatedAt())

		require.NoError(t, b.Cancel(createdAt.Add(2*time.Minute)))
		assert.Equal(t, booking.Cancelled, b.Status())
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel(createdAt))

		err := b.Confirm(createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, booking.Cancelled, b.Status())
	})
}

func TestBooking_IsExpired(t *testing.T) {
	b := newBooking(t)
	ttl := 24 * time.Hour

	assert.False(t, b.IsExpired(createdAt.Add(time.Hour), ttl))
	assert.True(t, b.IsExpired(createdAt.Add(ttl), ttl))

	require.NoError(t, b.Confirm(createdAt))
	assert.False(t, b.IsExpired(createdAt.Add(48*time.Hour), ttl), "only Created bookings expire")
}

func TestBooking_ValidateAndEquality(t *testing.T) {
	var zero *booking.Booking
	require.ErrorIs(t, zero.Validate(), booking.ErrBookingIsNotConstructed)
	require.ErrorIs(t, (&booking.Booking{}).Validate(), booking.ErrBookingIsNotConstructed)

	a := newBooking(t)
	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(newBooking(t)))
	assert.False(t, a.IsEqual(nil))
}
