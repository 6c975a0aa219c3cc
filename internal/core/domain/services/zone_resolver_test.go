package services_test

import (
	"testing"

	"ratefinder/internal/core/domain/model/country"
	"ratefinder/internal/core/domain/model/zone"
	"ratefinder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) services.ZoneResolver {
	t.Helper()
	aliases, err := country.NewAliases(map[string]string{"USA": "United States"})
	require.NoError(t, err)

	table, dropped := zone.NewTable(map[string]map[string]string{
		"FedEx": {
			"GERMANY":   "F",
			"U.S.A.":    "G",
			"PAPUA NEW": "E",
			"UNITED":    "F",
		},
		"DHL": {
			"GERMANY":          "ZONE VII",
			"PAPUA NEW GUINEA": "6",
			"UNITED KINGDOM":   "7",
			"ATLANTIS":         "42",
		},
		"UPS": {
			"GERMANY": "6",
		},
	}, aliases)
	require.Equal(t, 1, dropped)

	return services.NewZoneResolver(table)
}

func TestZoneResolver_Resolve(t *testing.T) {
	r := newResolver(t)

	t.Run("direct lookup for every carrier", func(t *testing.T) {
		m := r.Resolve("GERMANY")

		assert.Equal(t, "GERMANY", m.Country)
		assert.Equal(t, map[string]string{"fedex_zone": "F", "dhl_zone": "7", "ups_zone": "6"}, m.Fields())
	})

	t.Run("aliased zone table keys", func(t *testing.T) {
		m := r.Resolve("UNITED STATES")

		token, ok := m.Zone("FedEx")
		assert.True(t, ok)
		assert.Equal(t, "G", token)
		_, ok = m.Zone("DHL")
		assert.False(t, ok)
	})

	t.Run("loose match on truncated keys", func(t *testing.T) {
		m := r.Resolve("PAPUA NEW GUINEA")

		assert.Equal(t, map[string]string{"fedex_zone": "E", "dhl_zone": "6"}, m.Fields())
	})

	t.Run("loose match only when the direct lookup misses", func(t *testing.T) {
		m := r.Resolve("UNITED KINGDOM")

		fedex, _ := m.Zone("FedEx")
		dhl, _ := m.Zone("DHL")
		assert.Equal(t, "F", fedex)
		assert.Equal(t, "7", dhl)
	})

	t.Run("unknown country resolves to an empty mapping", func(t *testing.T) {
		m := r.Resolve("ATLANTIS")

		assert.True(t, m.IsEmpty())
		assert.Equal(t, "ATLANTIS", m.Country)
	})

	t.Run("a longer key naming another country is never used", func(t *testing.T) {
		m := r.Resolve("GUINEA")

		_, ok := m.Zone("DHL")
		assert.False(t, ok)
		_, ok = m.Zone("FedEx")
		assert.False(t, ok)
	})

	t.Run("nil table", func(t *testing.T) {
		assert.True(t, services.NewZoneResolver(nil).Resolve("GERMANY").IsEmpty())
	})
}

func TestZoneResolver_CompleteCountryKeys(t *testing.T) {
	table, dropped := zone.NewTable(map[string]map[string]string{
		"FedEx": {"GUINEA": "Q", "KOREA": "D", "PAPUA NEW": "E"},
		"DHL":   {"PAPUA NEW GUINEA": "6", "GUINEA BISSAU": "8"},
		"UPS":   {"GUINEA": "7"},
	}, country.Aliases{})
	require.Zero(t, dropped)

	t.Run("guinea keeps only its own zones", func(t *testing.T) {
		r := services.NewZoneResolver(table)

		m := r.Resolve("GUINEA")

		assert.Equal(t, map[string]string{"fedex_zone": "Q", "ups_zone": "7"}, m.Fields())
	})

	t.Run("a key shared by two carriers is a complete name", func(t *testing.T) {
		r := services.NewZoneResolver(table)

		m := r.Resolve("GUINEA BISSAU")

		assert.Equal(t, map[string]string{"dhl_zone": "8"}, m.Fields())
	})

	t.Run("listed country names are complete", func(t *testing.T) {
		r := services.NewZoneResolver(table, []string{"Korea"})

		m := r.Resolve("KOREA SOUTH")

		assert.True(t, m.IsEmpty())
	})

	t.Run("truncated keys still resolve", func(t *testing.T) {
		r := services.NewZoneResolver(table, []string{"Papua New Guinea"})

		m := r.Resolve("PAPUA NEW GUINEA")

		assert.Equal(t, map[string]string{"fedex_zone": "E", "dhl_zone": "6"}, m.Fields())
	})
}
