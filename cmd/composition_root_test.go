package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ratefinder/cmd"
	"ratefinder/internal/adapters/out/dataset"
	"ratefinder/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_WithoutDatabase(t *testing.T) {
	cfg, err := cmd.ConfigFromEnv(func(string) string { return "" })
	require.NoError(t, err)

	doc := dataset.Document{Carriers: map[string]dataset.CarrierDoc{
		"DHL": {Services: map[string]map[string]map[string]dataset.RateDoc{
			"Express": {"ZONE 7": {"2.5": {Rate: decimal.NewFromInt(950)}}},
		}},
	}}
	finder, err := services.NewRateFinderFromDataset(dataset.ToDataset(doc, "memory"))
	require.NoError(t, err)

	root := cmd.NewCompositionRoot(cfg, finder, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.False(t, root.BookingsEnabled())
	assert.Equal(t, 0, root.CreateJobManager().Len())

	e, err := root.CreateRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/get-rates", strings.NewReader(`{"country": "Germany", "weight": 2.2}`))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"carrier":"DHL"`)
	assert.Contains(t, rec.Body.String(), `"dhl_zone":"7"`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
