package bookingrepo_test

import (
	"context"
	"testing"
	"time"

	"ratefinder/internal/adapters/out/postgres/bookingrepo"
	"ratefinder/internal/adapters/out/postgres/pgtest"
	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// BookingRepositoryIntegrationTestSuite checks persistence of bookings
// against a real PostgreSQL.
type BookingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bookingrepo.GormBookingRepository
	tracker    *MockAggregateTracker
}

var baseTime = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func (suite *BookingRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *BookingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bookings").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = bookingrepo.NewGormBookingRepository(suite.db, suite.tracker)
}

func (suite *BookingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BookingRepositoryIntegrationTestSuite) newBooking(createdAt time.Time, amount string) *booking.Booking {
	customer, err := booking.NewCustomer("Asha Rao", "Asha@Example.com")
	suite.Require().NoError(err)

	b, err := booking.NewBooking(
		kernel.NewUUID(),
		customer,
		"Germany",
		kernel.MustNewWeight(7.5),
		booking.QuotedRate{
			Carrier:     "DHL",
			ServiceType: "Express",
			MatchType:   rate.ZoneBased,
			Zone:        "7",
			WeightTier:  21,
			Amount:      decimal.RequireFromString(amount),
			Currency:    "INR",
		},
		createdAt,
	)
	suite.Require().NoError(err)
	return b
}

func (suite *BookingRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	b := suite.newBooking(baseTime, "157.50")
	suite.tracker.On("TrackAggregate", b.ID(), b).Once()

	suite.Require().NoError(suite.repository.Add(ctx, b))

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(b))
	suite.Equal("GERMANY", got.Country())
	suite.Equal("asha@example.com", got.Customer().Email())
	suite.Equal("Asha Rao", got.Customer().Name())
	suite.InDelta(7.5, got.Weight().Kilograms(), 1e-9)
	suite.Equal(booking.Created, got.Status())
	suite.Equal("DHL", got.Quote().Carrier)
	suite.Equal(rate.ZoneBased, got.Quote().MatchType)
	suite.Equal("7", got.Quote().Zone)
	suite.InDelta(21, got.Quote().WeightTier, 1e-9)
	suite.True(decimal.RequireFromString("157.50").Equal(got.Quote().Amount))
	suite.True(baseTime.Equal(got.CreatedAt()))
	suite.True(baseTime.Equal(got.UpdatedAt()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BookingRepositoryIntegrationTestSuite) TestAdd_Duplicate_ReturnsError() {
	ctx := context.Background()
	b := suite.newBooking(baseTime, "950")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, b))
	suite.Require().Error(suite.repository.Add(ctx, b))
}

func (suite *BookingRepositoryIntegrationTestSuite) TestAdd_UnconstructedBooking_ReturnsError() {
	err := suite.repository.Add(context.Background(), &booking.Booking{})

	suite.Require().ErrorIs(err, booking.ErrBookingIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	b := suite.newBooking(baseTime, "950")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, b))

	confirmedAt := baseTime.Add(time.Hour)
	suite.Require().NoError(b.Confirm(confirmedAt))
	suite.Require().NoError(suite.repository.Update(ctx, b))

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal(booking.Confirmed, got.Status())
	suite.True(confirmedAt.Equal(got.UpdatedAt()))
	suite.True(baseTime.Equal(got.CreatedAt()))
}

func (suite *BookingRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	b := suite.newBooking(baseTime, "950")

	err := suite.repository.Update(context.Background(), b)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestGet_InvalidID_ReturnsError() {
	_, err := suite.repository.Get(context.Background(), kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestGetAllCreatedBefore() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	oldest := suite.newBooking(baseTime.Add(-3*time.Hour), "950")
	older := suite.newBooking(baseTime.Add(-2*time.Hour), "950")
	fresh := suite.newBooking(baseTime, "950")
	confirmed := suite.newBooking(baseTime.Add(-4*time.Hour), "950")
	suite.Require().NoError(confirmed.Confirm(baseTime))

	for _, b := range []*booking.Booking{fresh, older, confirmed, oldest} {
		suite.Require().NoError(suite.repository.Add(ctx, b))
	}

	stale, err := suite.repository.GetAllCreatedBefore(ctx, baseTime.Add(-time.Hour))

	suite.Require().NoError(err)
	suite.Require().Len(stale, 2)
	suite.True(stale[0].IsEqual(oldest))
	suite.True(stale[1].IsEqual(older))
}

func TestBookingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BookingRepositoryIntegrationTestSuite))
}
