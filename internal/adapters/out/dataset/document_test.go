package dataset_test

import (
	"encoding/json"
	"testing"

	"ratefinder/internal/adapters/out/dataset"
	"ratefinder/internal/core/domain/model/country"
	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/core/domain/model/zone"
	"ratefinder/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateDoc(amount int64) dataset.RateDoc {
	return dataset.RateDoc{Rate: decimal.NewFromInt(amount), Currency: "INR"}
}

func sampleDocument() dataset.Document {
	return dataset.Document{
		Carriers: map[string]dataset.CarrierDoc{
			"DHL": {Services: map[string]map[string]map[string]dataset.RateDoc{
				"Express": {
					"ZONE 7": {
						"1":    rateDoc(950),
						"0.5":  rateDoc(500),
						"0.25": rateDoc(300),
						"abc":  rateDoc(1),
					},
				},
			}},
			"FedEx": {Services: map[string]map[string]map[string]dataset.RateDoc{
				"Priority": {
					"GERMANY": {"1": rateDoc(1100)},
				},
			}},
		},
		ZoneMappings: map[string]map[string]dataset.ZoneID{
			"DHL": {"GERMANY": "7"},
		},
		Aliases: map[string]string{"ALLEMAGNE": "GERMANY"},
	}
}

func TestZoneID_UnmarshalJSON(t *testing.T) {
	var doc dataset.Document
	err := json.Unmarshal([]byte(`{
		"carriers": {},
		"zone_mappings": {"DHL": {"GERMANY": 7, "FRANCE": "6"}, "FedEx": {"GERMANY": "F"}}
	}`), &doc)

	require.NoError(t, err)
	assert.Equal(t, dataset.ZoneID("7"), doc.ZoneMappings["DHL"]["GERMANY"])
	assert.Equal(t, dataset.ZoneID("6"), doc.ZoneMappings["DHL"]["FRANCE"])
	assert.Equal(t, dataset.ZoneID("F"), doc.ZoneMappings["FedEx"]["GERMANY"])

	var z dataset.ZoneID
	require.Error(t, json.Unmarshal([]byte(`true`), &z))
}

func TestRateDoc_WeightRange(t *testing.T) {
	var r dataset.RateDoc
	err := json.Unmarshal([]byte(`{"rate": 3000, "currency": "INR", "is_per_kg": false, "weight_range": [6, 10]}`), &r)

	require.NoError(t, err)
	require.NotNil(t, r.WeightRange)
	assert.Equal(t, [2]float64{6, 10}, *r.WeightRange)
	assert.True(t, decimal.NewFromInt(3000).Equal(r.Rate))
}

func TestToDataset(t *testing.T) {
	ds := dataset.ToDataset(sampleDocument(), "memory")

	require.Len(t, ds.Entries, 3)
	assert.Equal(t, 2, ds.Skipped)
	assert.Equal(t, "memory", ds.Source)

	assert.Equal(t, "DHL", ds.Entries[0].Carrier())
	assert.InDelta(t, 0.5, ds.Entries[0].Tier(), 0)
	assert.InDelta(t, 1.0, ds.Entries[1].Tier(), 0)
	assert.Equal(t, "FedEx", ds.Entries[2].Carrier())
	assert.Equal(t, "GERMANY", ds.Entries[2].Key())

	assert.Equal(t, map[string]map[string]string{"DHL": {"GERMANY": "7"}}, ds.Zones)
	assert.Equal(t, "GERMANY", ds.Aliases["ALLEMAGNE"])
	assert.Equal(t, "UNITED STATES", ds.Aliases["USA"])
}

func TestToDataset_RangeRowUsesUpperBound(t *testing.T) {
	doc := dataset.Document{Carriers: map[string]dataset.CarrierDoc{
		"Aramax": {Services: map[string]map[string]map[string]dataset.RateDoc{
			"Standard": {"FRANCE": {
				"8": {Rate: decimal.NewFromInt(3000), WeightRange: &[2]float64{6, 10}},
			}},
		}},
	}}

	ds := dataset.ToDataset(doc, "memory")

	require.Len(t, ds.Entries, 1)
	assert.InDelta(t, 10.0, ds.Entries[0].Tier(), 0)
	assert.Equal(t, rate.DefaultCurrency, ds.Entries[0].Currency())
}

func TestToDataset_FallsBackToDefaultZones(t *testing.T) {
	doc := sampleDocument()
	doc.ZoneMappings = nil

	ds := dataset.ToDataset(doc, "memory")

	assert.Equal(t, dataset.DefaultZones(), ds.Zones)
}

func TestToDataset_FeedsRateFinder(t *testing.T) {
	finder, err := services.NewRateFinderFromDataset(dataset.ToDataset(sampleDocument(), "memory"))
	require.NoError(t, err)

	quote, err := finder.FindRates("Allemagne", 0.8)
	require.NoError(t, err)

	require.Len(t, quote.Results, 2)
	assert.Equal(t, "GERMANY", quote.Country)

	dhl, ok := quote.Find("DHL", "Express")
	require.True(t, ok)
	assert.Equal(t, rate.ZoneBased, dhl.MatchType)
	assert.InDelta(t, 1.0, dhl.WeightTier, 0)
	assert.True(t, decimal.NewFromInt(950).Equal(dhl.FinalRate))

	fedex, ok := quote.Find("FedEx", "Priority")
	require.True(t, ok)
	assert.Equal(t, rate.Direct, fedex.MatchType)
}

func TestDefaults(t *testing.T) {
	aliases, err := country.NewAliases(dataset.DefaultAliases())
	require.NoError(t, err)

	table, dropped := zone.NewTable(dataset.DefaultZones(), aliases)
	assert.Equal(t, 0, dropped)
	assert.Len(t, table.Carriers(), 3)

	fedex, ok := table.Lookup("FedEx", "UNITED STATES")
	require.True(t, ok)
	assert.NotEmpty(t, fedex)

	t.Run("returns copies", func(t *testing.T) {
		a := dataset.DefaultAliases()
		a["USA"] = "MARS"
		assert.Equal(t, "UNITED STATES", dataset.DefaultAliases()["USA"])

		z := dataset.DefaultZones()
		delete(z, "DHL")
		assert.Contains(t, dataset.DefaultZones(), "DHL")
	})
}
