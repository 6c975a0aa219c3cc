package http

import (
	"ratefinder/internal/core/application/usecases/queries"
	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/generated/servers"
)

// NewGetRatesResponse renders a quote the way POST /api/get-rates returns
// it. requested is the country as the client sent it.
func NewGetRatesResponse(requested string, weight float64, q rate.Quote) servers.GetRatesResponse {
	return servers.GetRatesResponse{
		Country:           requested,
		NormalizedCountry: q.Country,
		Weight:            weight,
		Data: servers.RatesData{
			ZoneMappings: q.Zones.Fields(),
			Results:      toMatchResults(q.Results),
			Unpriced:     toMatchResults(q.Unpriced),
			TotalFound:   len(q.Results),
		},
	}
}

func toMatchResults(results []rate.MatchResult) []servers.MatchResult {
	out := make([]servers.MatchResult, 0, len(results))
	for _, r := range results {
		out = append(out, servers.MatchResult{
			Carrier:        r.Carrier,
			ServiceType:    r.ServiceType,
			Rate:           r.Rate.InexactFloat64(),
			Currency:       r.Currency,
			Zone:           r.Zone,
			MatchedCountry: r.MatchedCountry,
			WeightTier:     r.WeightTier,
			MatchType:      string(r.MatchType),
			FinalRate:      r.FinalRate.InexactFloat64(),
			IsPerKg:        r.PerKg,
			Calculation:    r.Calculation,
		})
	}
	return out
}

func toBooking(b queries.GetBookingQueryResponse) servers.Booking {
	return servers.Booking{
		ID:            b.ID.Bytes(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Country:       b.Country,
		Weight:        b.WeightKg,
		Carrier:       b.Carrier,
		ServiceType:   b.ServiceType,
		MatchType:     b.MatchType,
		Zone:          b.Zone,
		WeightTier:    b.WeightTier,
		Amount:        b.Amount.InexactFloat64(),
		Currency:      b.Currency,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
