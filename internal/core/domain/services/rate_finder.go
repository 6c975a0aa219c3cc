package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"ratefinder/internal/core/domain/model/country"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/core/domain/model/zone"
	"ratefinder/internal/pkg/errs"
)

// ErrInvalidInput is returned by FindRates for a blank country or a weight
// that is not a positive finite number. It wraps the errs value error that
// names the field.
var ErrInvalidInput = errors.New("invalid input")

// RateFinder answers "what does it cost to ship w kg to country c" across
// every carrier of the price data.
//
// Pipeline:
//  1. validate the request
//  2. normalize the country
//  3. resolve carrier zones (best effort)
//  4. per carrier, collect the direct listings of the country and its
//     sub-regions, plus the zone listing when the carrier has a zone
//  5. per listing and service, apply the ceiling tier rule
//  6. drop duplicate {carrier, service, final rate} results, keeping the
//     direct one
//  7. sort by final rate and move unpriced results aside
//
// Missing zones, missing coverage and weights above every tier only reduce
// the result list. An empty Quote.Results is a valid answer.
type RateFinder struct {
	normalizer CountryNormalizer
	resolver   ZoneResolver
	matcher    TierMatcher
	table      *rate.Table

	zonesSkipped int
}

// NewRateFinder wires the pipeline. Returns rate.ErrDataUnavailable when
// table is nil or empty.
func NewRateFinder(normalizer CountryNormalizer, resolver ZoneResolver, matcher TierMatcher, table *rate.Table) (*RateFinder, error) {
	if table == nil || table.Len() == 0 {
		return nil, rate.ErrDataUnavailable
	}
	return &RateFinder{
		normalizer: normalizer,
		resolver:   resolver,
		matcher:    matcher,
		table:      table,
	}, nil
}

// NewRateFinderFromDataset builds every index from a loaded dataset.
// Zone values that do not parse for their carrier are dropped and reported
// by ZonesSkipped.
//
// Returns:
//   - rate.ErrDataUnavailable when the dataset has no entries
//   - an errs value error when the alias table is inconsistent
func NewRateFinderFromDataset(ds rate.Dataset) (*RateFinder, error) {
	if ds.IsEmpty() {
		return nil, rate.ErrDataUnavailable
	}

	aliases, err := country.NewAliases(ds.Aliases)
	if err != nil {
		return nil, fmt.Errorf("country aliases: %w", err)
	}

	zones, zonesSkipped := zone.NewTable(ds.Zones, aliases)

	table, err := rate.NewTable(ds.Entries, zones.Carriers(), aliases)
	if err != nil {
		return nil, err
	}

	countries := regionBases(table.Countries())
	normalizer := NewCountryNormalizer(aliases, zones.Names(), countries)
	resolver := NewZoneResolver(zones, aliases.Canonicals(), countries)

	finder, err := NewRateFinder(normalizer, resolver, NewTierMatcher(), table)
	if err != nil {
		return nil, err
	}
	finder.zonesSkipped = zonesSkipped
	return finder, nil
}

// regionBases replaces sub-region keys such as "AUSTRALIA METRO" by their
// country, so that a region never wins a substring match over the country.
func regionBases(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if base, ok := rate.RegionBase(k); ok {
			k = base
		}
		out = append(out, k)
	}
	return out
}

// Carriers returns every carrier with price data, sorted.
func (f *RateFinder) Carriers() []string {
	return f.table.Carriers()
}

// Entries returns the number of indexed price entries.
func (f *RateFinder) Entries() int {
	return f.table.Len()
}

// ZonesSkipped returns the number of zone table values that did not parse
// for their carrier and were left out of the zone index.
func (f *RateFinder) ZonesSkipped() int {
	return f.zonesSkipped
}

// Normalize exposes the country normalizer of the pipeline.
func (f *RateFinder) Normalize(input string) string {
	return f.normalizer.Normalize(input)
}

// FindRates prices a request.
//
// Parameters:
//   - countryInput: free-text destination, e.g. "usa" or "Deutschland"
//   - weightKg: package weight in kilograms
//
// Returns:
//   - rate.Quote with Results sorted ascending by final rate
//   - ErrInvalidInput for a blank country or a weight that is not a
//     positive finite number
//
// Example:
//
//	q, err := finder.FindRates("Germany", 2.2)
//	if errors.Is(err, services.ErrInvalidInput) {
//		// ask the user to correct the request
//	}
//	for _, r := range q.Results {
//		fmt.Println(r.Carrier, r.ServiceType, r.FinalRate)
//	}
func (f *RateFinder) FindRates(countryInput string, weightKg float64) (rate.Quote, error) {
	if strings.TrimSpace(countryInput) == "" {
		return rate.Quote{}, fmt.Errorf("%w: %w", ErrInvalidInput, errs.NewValueIsRequiredError("country"))
	}
	w, err := kernel.NewWeight(weightKg)
	if err != nil {
		return rate.Quote{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	canonical := f.normalizer.Normalize(countryInput)
	zones := f.resolver.Resolve(canonical)

	var found []rate.MatchResult
	for _, carrier := range f.table.Carriers() {
		for _, l := range f.table.CountryListings(carrier, canonical) {
			found = append(found, f.match(l, w, rate.Direct, canonical, "")...)
		}
		if token, ok := zones.Zone(carrier); ok {
			key := zone.Key(token)
			l := rate.Listing{Key: key, Entries: f.table.Lookup(carrier, key)}
			found = append(found, f.match(l, w, rate.ZoneBased, canonical, token)...)
		}
	}

	results := dedupe(found)
	sortResults(results)

	q := rate.Quote{
		Country: canonical,
		Weight:  w,
		Zones:   zones,
	}
	for _, r := range results {
		if r.IsPriced() {
			q.Results = append(q.Results, r)
		} else {
			q.Unpriced = append(q.Unpriced, r)
		}
	}
	return q, nil
}

// match applies the tier rule to every service of a listing, services in
// order of first appearance.
func (f *RateFinder) match(l rate.Listing, w kernel.Weight, mt rate.MatchType, matchedCountry, token string) []rate.MatchResult {
	var (
		serviceOrder []string
		byService    = make(map[string][]rate.Entry)
	)
	for _, e := range l.Entries {
		if _, ok := byService[e.ServiceType()]; !ok {
			serviceOrder = append(serviceOrder, e.ServiceType())
		}
		byService[e.ServiceType()] = append(byService[e.ServiceType()], e)
	}

	var out []rate.MatchResult
	for _, s := range serviceOrder {
		if e, ok := f.matcher.Match(byService[s], w); ok {
			out = append(out, rate.NewMatchResult(l, e, w, mt, matchedCountry, token))
		}
	}
	return out
}

type dedupeKey struct {
	carrier string
	service string
	amount  string
}

// dedupe keeps one result per {carrier, service, final rate}, preferring the
// direct match. Order of first appearance is kept.
func dedupe(results []rate.MatchResult) []rate.MatchResult {
	seen := make(map[dedupeKey]int, len(results))
	out := make([]rate.MatchResult, 0, len(results))
	for _, r := range results {
		k := dedupeKey{
			carrier: strings.ToUpper(r.Carrier),
			service: strings.ToUpper(r.ServiceType),
			amount:  r.FinalRate.StringFixed(4),
		}
		if i, ok := seen[k]; ok {
			if out[i].MatchType != rate.Direct && r.MatchType == rate.Direct {
				out[i] = r
			}
			continue
		}
		seen[k] = len(out)
		out = append(out, r)
	}
	return out
}

func sortResults(results []rate.MatchResult) {
	slices.SortStableFunc(results, func(a, b rate.MatchResult) int {
		if c := a.FinalRate.Cmp(b.FinalRate); c != 0 {
			return c
		}
		if c := strings.Compare(strings.ToUpper(a.Carrier), strings.ToUpper(b.Carrier)); c != 0 {
			return c
		}
		if c := strings.Compare(a.ServiceType, b.ServiceType); c != 0 {
			return c
		}
		return strings.Compare(string(a.MatchType), string(b.MatchType))
	})
}
