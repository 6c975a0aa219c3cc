package rate

import (
	"strings"

	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/core/domain/model/zone"

	"github.com/shopspring/decimal"
)

// MatchType tells how a result was found.
type MatchType string

const (
	Direct    MatchType = "direct"
	ZoneBased MatchType = "zone_based"
)

// MatchResult is one priced option for a request. It is built per request
// and never persisted.
type MatchResult struct {
	Carrier        string
	ServiceType    string
	Rate           decimal.Decimal
	Currency       string
	Zone           string
	MatchedCountry string
	WeightTier     float64
	MatchType      MatchType
	FinalRate      decimal.Decimal
	PerKg          bool
	Calculation    string
}

// NewMatchResult prices entry e of listing l for weight w. Sub-region
// listings are reported as "AUSTRALIA (METRO)" with service "Express (METRO)".
func NewMatchResult(l Listing, e Entry, w kernel.Weight, matchType MatchType, matchedCountry, zoneToken string) MatchResult {
	service := e.serviceType
	if l.Region != "" {
		service += " (" + l.Region + ")"
		matchedCountry += " (" + l.Region + ")"
	}
	return MatchResult{
		Carrier:        e.carrier,
		ServiceType:    service,
		Rate:           e.rate,
		Currency:       e.currency,
		Zone:           zoneToken,
		MatchedCountry: matchedCountry,
		WeightTier:     e.tier,
		MatchType:      matchType,
		FinalRate:      e.FinalRate(w),
		PerKg:          e.perKg,
		Calculation:    e.Calculation(w),
	}
}

// IsPriced reports whether the final rate is positive.
func (r MatchResult) IsPriced() bool {
	return r.FinalRate.IsPositive()
}

// Quote is the outcome of pricing one request. An empty Results list is a
// valid outcome meaning no carrier covers the destination and weight.
type Quote struct {
	// Country is the canonical form of the requested destination.
	Country string
	Weight  kernel.Weight
	Zones   zone.Mapping

	// Results is sorted ascending by final rate.
	Results []MatchResult

	// Unpriced holds matches whose final rate is zero or below. They are
	// kept for diagnostics only.
	Unpriced []MatchResult
}

// Find returns the result for carrier and service type, compared
// case-insensitively.
func (q Quote) Find(carrier, serviceType string) (MatchResult, bool) {
	for _, r := range q.Results {
		if strings.EqualFold(r.Carrier, strings.TrimSpace(carrier)) &&
			strings.EqualFold(r.ServiceType, strings.TrimSpace(serviceType)) {
			return r, true
		}
	}
	return MatchResult{}, false
}
