package services_test

import (
	"math"
	"sync"
	"testing"

	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/core/domain/services"
	"ratefinder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	carrier, key, service string
	tier                  float64
	price                 string
	perKg                 bool
}

func newFinder(t *testing.T, rows []row, zones map[string]map[string]string, aliases map[string]string) *services.RateFinder {
	t.Helper()
	entries := make([]rate.Entry, 0, len(rows))
	for _, r := range rows {
		e, err := rate.NewEntry(r.carrier, r.key, r.service, r.tier, decimal.RequireFromString(r.price), "INR", r.perKg)
		require.NoError(t, err)
		entries = append(entries, e)
	}

	f, err := services.NewRateFinderFromDataset(rate.Dataset{Entries: entries, Zones: zones, Aliases: aliases})
	require.NoError(t, err)
	return f
}

func germanyFinder(t *testing.T) *services.RateFinder {
	return newFinder(t, []row{
		{"FedEx", "Germany", "Express", 1, "500", false},
		{"FedEx", "Germany", "Express", 2, "800", false},
		{"FedEx", "Germany", "Express", 3, "1100", false},
		{"DHL", "ZONE 3", "Express", 1, "600", false},
		{"DHL", "ZONE 3", "Express", 2.5, "950", false},
		{"DHL", "ZONE 3", "Express", 5, "1400", false},
	}, map[string]map[string]string{
		"DHL": {"GERMANY": "3"},
	}, nil)
}

func TestRateFinder_GermanyExample(t *testing.T) {
	f := germanyFinder(t)

	q, err := f.FindRates("Germany", 2.2)

	require.NoError(t, err)
	assert.Equal(t, "GERMANY", q.Country)
	assert.InDelta(t, 2.2, q.Weight.Kilograms(), 0)
	assert.Equal(t, map[string]string{"dhl_zone": "3"}, q.Zones.Fields())
	assert.Empty(t, q.Unpriced)
	require.Len(t, q.Results, 2)

	dhl := q.Results[0]
	assert.Equal(t, "DHL", dhl.Carrier)
	assert.Equal(t, "950", dhl.FinalRate.String())
	assert.InDelta(t, 2.5, dhl.WeightTier, 0)
	assert.Equal(t, rate.ZoneBased, dhl.MatchType)
	assert.Equal(t, "3", dhl.Zone)
	assert.Equal(t, "GERMANY", dhl.MatchedCountry)

	fedex := q.Results[1]
	assert.Equal(t, "FedEx", fedex.Carrier)
	assert.Equal(t, "1100", fedex.FinalRate.String())
	assert.InDelta(t, 3, fedex.WeightTier, 0)
	assert.Equal(t, rate.Direct, fedex.MatchType)
	assert.Empty(t, fedex.Zone)
}

func TestRateFinder_InvalidInput(t *testing.T) {
	f := germanyFinder(t)

	t.Run("non-positive or non-finite weight", func(t *testing.T) {
		for _, w := range []float64{0, -2.5, math.NaN(), math.Inf(1)} {
			q, err := f.FindRates("Germany", w)

			require.ErrorIs(t, err, services.ErrInvalidInput, "w=%v", w)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "w=%v", w)
			assert.Empty(t, q.Results)
			assert.Empty(t, q.Unpriced)
		}
	})

	t.Run("blank country", func(t *testing.T) {
		for _, c := range []string{"", "   ", "\t"} {
			q, err := f.FindRates(c, 1)

			require.ErrorIs(t, err, services.ErrInvalidInput)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Empty(t, q.Results)
		}
	})
}

func TestRateFinder_NoCoverage(t *testing.T) {
	f := germanyFinder(t)

	t.Run("unknown country is an empty result, not an error", func(t *testing.T) {
		q, err := f.FindRates("Atlantis", 1)

		require.NoError(t, err)
		assert.Empty(t, q.Results)
		assert.Equal(t, "Atlantis", q.Country)
		assert.True(t, q.Zones.IsEmpty())
	})

	t.Run("weight above every tier", func(t *testing.T) {
		q, err := f.FindRates("Germany", 6)

		require.NoError(t, err)
		assert.Empty(t, q.Results)
	})

	t.Run("weight above one carrier's tiers only", func(t *testing.T) {
		q, err := f.FindRates("Germany", 4)

		require.NoError(t, err)
		require.Len(t, q.Results, 1)
		assert.Equal(t, "DHL", q.Results[0].Carrier)
	})
}

func TestRateFinder_DedupeKeepsDirect(t *testing.T) {
	f := newFinder(t, []row{
		{"UPS", "ZONE 6", "Saver", 1, "700", false},
		{"UPS", "FRANCE", "Saver", 1, "700", false},
		{"UPS", "ZONE 6", "Expedited", 1, "650", false},
		{"UPS", "FRANCE", "Expedited", 1, "690", false},
	}, map[string]map[string]string{
		"UPS": {"FRANCE": "6"},
	}, nil)

	q, err := f.FindRates("france", 1)

	require.NoError(t, err)
	require.Len(t, q.Results, 3)

	saver := 0
	for _, r := range q.Results {
		if r.ServiceType == "Saver" {
			saver++
			assert.Equal(t, rate.Direct, r.MatchType)
		}
	}
	assert.Equal(t, 1, saver)

	assert.Equal(t, "650", q.Results[0].FinalRate.String())
	assert.Equal(t, rate.ZoneBased, q.Results[0].MatchType)
	assert.Equal(t, "690", q.Results[1].FinalRate.String())
	assert.Equal(t, rate.Direct, q.Results[1].MatchType)
}

func TestRateFinder_OrderingAndUnpriced(t *testing.T) {
	f := newFinder(t, []row{
		{"Aramex", "UAE", "Express", 1, "900", false},
		{"DPEX", "UNITED ARAB EMIRATES", "Express", 1, "450", false},
		{"DPD", "U.A.E.", "Standard", 1, "0", false},
		{"Skynet", "UAE", "Economy", 1, "450", false},
		{"Skynet", "UAE", "Express", 1, "-1", false},
		{"Purolator", "UAE", "Express", 1, "1200", false},
	}, nil, map[string]string{"UAE": "United Arab Emirates"})

	q, err := f.FindRates("uae", 0.5)

	require.NoError(t, err)
	assert.Equal(t, "UNITED ARAB EMIRATES", q.Country)
	require.Len(t, q.Results, 4)
	for i := 1; i < len(q.Results); i++ {
		assert.True(t, q.Results[i-1].FinalRate.LessThanOrEqual(q.Results[i].FinalRate),
			"results must be non-decreasing by final rate")
	}
	assert.Equal(t, "DPEX", q.Results[0].Carrier, "ties break by carrier name")
	assert.Equal(t, "Skynet", q.Results[1].Carrier)

	require.Len(t, q.Unpriced, 2)
	for _, r := range q.Unpriced {
		assert.False(t, r.IsPriced())
	}
}

func TestRateFinder_PerKgAndServices(t *testing.T) {
	f := newFinder(t, []row{
		{"Aramex", "KUWAIT", "Document", 0.5, "700", false},
		{"Aramex", "KUWAIT", "Document", 1, "900", false},
		{"Aramex", "KUWAIT", "Non-Document", 1, "1000", false},
		{"Aramex", "KUWAIT", "Non-Document", 70, "21", true},
	}, nil, nil)

	q, err := f.FindRates("Kuwait", 7.5)

	require.NoError(t, err)
	require.Len(t, q.Results, 1)
	r := q.Results[0]
	assert.Equal(t, "Non-Document", r.ServiceType)
	assert.True(t, r.PerKg)
	assert.Equal(t, "157.5", r.FinalRate.String())
	assert.Equal(t, "21", r.Rate.String())
	assert.Equal(t, "₹21/kg × 7.5kg = ₹157.50", r.Calculation)

	q, err = f.FindRates("Kuwait", 0.8)
	require.NoError(t, err)
	require.Len(t, q.Results, 2)
	assert.Equal(t, "Document", q.Results[0].ServiceType)
	assert.Equal(t, "900", q.Results[0].FinalRate.String())
}

func TestRateFinder_SubRegions(t *testing.T) {
	f := newFinder(t, []row{
		{"Skynet Australia/NZ", "AUSTRALIA", "Express", 1, "1500", false},
		{"Skynet Australia/NZ", "AUSTRALIA METRO", "Express", 1, "1200", false},
		{"Skynet Australia/NZ", "NEW ZEALAND ZONE 1", "Express", 1, "1300", false},
	}, map[string]map[string]string{"FedEx": {"AUSTRALIA": "E"}}, nil)

	q, err := f.FindRates("australia", 1)

	require.NoError(t, err)
	require.Len(t, q.Results, 2)
	assert.Equal(t, "AUSTRALIA (METRO)", q.Results[0].MatchedCountry)
	assert.Equal(t, "Express (METRO)", q.Results[0].ServiceType)
	assert.Equal(t, rate.Direct, q.Results[0].MatchType)
	assert.Equal(t, "AUSTRALIA", q.Results[1].MatchedCountry)
	assert.Equal(t, "Express", q.Results[1].ServiceType)

	q, err = f.FindRates("New Zealand", 1)
	require.NoError(t, err)
	require.Len(t, q.Results, 1)
	assert.Equal(t, "NEW ZEALAND (ZONE 1)", q.Results[0].MatchedCountry)

	assert.Equal(t, "AUSTRALIA", f.Normalize("Austral"), "sub-region keys do not capture substring matches")
}

func TestRateFinder_IsDeterministicUnderConcurrency(t *testing.T) {
	f := germanyFinder(t)
	want, err := f.FindRates("germany", 2.2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]rate.Quote, 32)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = f.FindRates("germany", 2.2)
		}(i)
	}
	wg.Wait()

	for _, q := range got {
		assert.Equal(t, want.Results, q.Results)
	}
}

func TestNewRateFinder(t *testing.T) {
	t.Run("empty dataset is unavailable", func(t *testing.T) {
		_, err := services.NewRateFinderFromDataset(rate.Dataset{})

		require.ErrorIs(t, err, rate.ErrDataUnavailable)
	})

	t.Run("nil table is unavailable", func(t *testing.T) {
		_, err := services.NewRateFinder(services.CountryNormalizer{}, services.ZoneResolver{}, services.TierMatcher{}, nil)

		require.ErrorIs(t, err, rate.ErrDataUnavailable)
	})

	t.Run("inconsistent aliases", func(t *testing.T) {
		e, err := rate.NewEntry("DHL", "GERMANY", "Express", 1, decimal.NewFromInt(1), "INR", false)
		require.NoError(t, err)

		_, err = services.NewRateFinderFromDataset(rate.Dataset{
			Entries: []rate.Entry{e},
			Aliases: map[string]string{"A1": "B1", "B1": "A1"},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("carriers and entries", func(t *testing.T) {
		f := germanyFinder(t)

		assert.Equal(t, []string{"DHL", "FedEx"}, f.Carriers())
		assert.Equal(t, 6, f.Entries())
		assert.Zero(t, f.ZonesSkipped())
	})

	t.Run("unparsable zone values are counted", func(t *testing.T) {
		f := newFinder(t, []row{
			{"DHL", "ZONE 3", "Express", 1, "600", false},
		}, map[string]map[string]string{
			"DHL":   {"GERMANY": "3", "ATLANTIS": "42", "MORDOR": "ZONE"},
			"FedEx": {"GERMANY": "F"},
		}, nil)

		assert.Equal(t, 2, f.ZonesSkipped())
	})
}

func TestRateFinder_NeverBorrowsAnotherCountrysZone(t *testing.T) {
	f := newFinder(t, []row{
		{"DHL", "ZONE 6", "Express", 1, "600", false},
		{"FedEx", "ZONE Q", "Priority", 1, "900", false},
	}, map[string]map[string]string{
		"DHL":   {"PAPUA NEW GUINEA": "6"},
		"FedEx": {"GUINEA": "Q"},
	}, nil)

	q, err := f.FindRates("Guinea", 1)

	require.NoError(t, err)
	assert.Equal(t, "GUINEA", q.Country)
	assert.Equal(t, map[string]string{"fedex_zone": "Q"}, q.Zones.Fields())
	require.Len(t, q.Results, 1)
	assert.Equal(t, "FedEx", q.Results[0].Carrier)

	q, err = f.FindRates("Papua New Guinea", 1)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"dhl_zone": "6"}, q.Zones.Fields())
	require.Len(t, q.Results, 1)
	assert.Equal(t, "DHL", q.Results[0].Carrier)
}
