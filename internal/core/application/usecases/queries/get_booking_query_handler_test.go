package queries_test

import (
	"context"
	"testing"
	"time"

	"ratefinder/internal/adapters/out/postgres/bookingrepo"
	"ratefinder/internal/adapters/out/postgres/pgtest"
	"ratefinder/internal/core/application/usecases/queries"
	"ratefinder/internal/core/domain/model/booking"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetBookingQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetBookingQueryHandler
	repo      *bookingrepo.GormBookingRepository
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *GetBookingQueryHandlerTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.handler = queries.NewGetBookingQueryHandler(db)
	suite.repo = bookingrepo.NewGormBookingRepository(db, &mockAggregateTracker{})
}

func (suite *GetBookingQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetBookingQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bookings").Error)
}

func (suite *GetBookingQueryHandlerTestSuite) TestHandle_ReturnsBooking() {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	customer, err := booking.NewCustomer("Asha Rao", "asha@example.com")
	suite.Require().NoError(err)
	b, err := booking.NewBooking(kernel.NewUUID(), customer, "United Kingdom", kernel.MustNewWeight(1.2),
		booking.QuotedRate{
			Carrier:     "FedEx",
			ServiceType: "Priority",
			MatchType:   rate.Direct,
			WeightTier:  1.5,
			Amount:      decimal.RequireFromString("1234.50"),
			Currency:    "INR",
		}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(b.Cancel(createdAt.Add(time.Minute)))
	suite.Require().NoError(suite.repo.Add(ctx, b))

	query, err := queries.NewGetBookingQuery(b.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(b.ID(), resp.ID)
	suite.Equal("Asha Rao", resp.CustomerName)
	suite.Equal("UNITED KINGDOM", resp.Country)
	suite.InDelta(1.2, resp.WeightKg, 1e-9)
	suite.Equal("FedEx", resp.Carrier)
	suite.Equal("Priority", resp.ServiceType)
	suite.Equal("direct", resp.MatchType)
	suite.Empty(resp.Zone)
	suite.InDelta(1.5, resp.WeightTier, 1e-9)
	suite.Equal("1234.5", resp.Amount.String())
	suite.Equal("Cancelled", resp.Status)
	suite.True(createdAt.Equal(resp.CreatedAt))
	suite.True(createdAt.Add(time.Minute).Equal(resp.UpdatedAt))
}

func (suite *GetBookingQueryHandlerTestSuite) TestHandle_Missing_ReturnsNotFound() {
	query, err := queries.NewGetBookingQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetBookingQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetBookingQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetBookingQueryIsNotConstructed)
}

func (suite *GetBookingQueryHandlerTestSuite) TestNewGetBookingQuery_InvalidID() {
	_, err := queries.NewGetBookingQuery(kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetBookingQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBookingQueryHandlerTestSuite))
}
