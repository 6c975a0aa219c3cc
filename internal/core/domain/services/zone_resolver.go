package services

import (
	"strings"

	"ratefinder/internal/core/domain/model/country"
	"ratefinder/internal/core/domain/model/zone"
)

// ZoneResolver maps a canonical country to the zone of every zoned carrier.
//
// For each carrier the country is looked up directly in the zone table.
// Carriers without a direct entry fall back to a truncated key of that
// carrier: a key that is a leading run of whole words of the country, such
// as "PAPUA NEW" for "PAPUA NEW GUINEA" or "UNITED" for "UNITED KINGDOM".
// Keys that are complete country names never take part in the fallback, so
// "GUINEA" is not priced with the zone of "PAPUA NEW GUINEA" and
// "GUINEA BISSAU" is not priced with the zone of "GUINEA". Carriers that
// still have nothing are left out of the mapping. An empty mapping is a
// normal outcome.
type ZoneResolver struct {
	table    *zone.Table
	complete map[string]bool
}

// NewZoneResolver creates a resolver over table. A nil table resolves
// nothing.
//
// countries lists complete country names, e.g. the alias targets and the
// countries of the rate table. A zone key shared by two or more carriers is
// treated as complete as well.
func NewZoneResolver(table *zone.Table, countries ...[]string) ZoneResolver {
	r := ZoneResolver{table: table, complete: make(map[string]bool)}
	for _, list := range countries {
		for _, name := range list {
			if folded := country.Fold(name); folded != "" {
				r.complete[folded] = true
			}
		}
	}
	if table == nil {
		return r
	}

	seen := make(map[string]int)
	for _, carrier := range table.Carriers() {
		for _, key := range table.Countries(carrier) {
			seen[key]++
		}
	}
	for key, n := range seen {
		if n > 1 {
			r.complete[key] = true
		}
	}
	return r
}

// Resolve returns the zone mapping of canonicalCountry.
//
// Example:
//
//	m := resolver.Resolve("GERMANY")
//	m.Zone("FedEx") // "F", true
//	m.Zone("DHL")   // "7", true
func (r ZoneResolver) Resolve(canonicalCountry string) zone.Mapping {
	if r.table == nil {
		return zone.NewMapping(canonicalCountry)
	}

	folded := country.Fold(canonicalCountry)
	var assignments []zone.Assignment
	for _, carrier := range r.table.Carriers() {
		if token, ok := r.table.Lookup(carrier, canonicalCountry); ok {
			assignments = append(assignments, zone.Assignment{Carrier: carrier, Token: token})
			continue
		}
		if key, ok := r.truncatedKey(folded, r.table.Countries(carrier)); ok {
			token, _ := r.table.Lookup(carrier, key)
			assignments = append(assignments, zone.Assignment{Carrier: carrier, Token: token})
		}
	}

	return zone.NewMapping(canonicalCountry, assignments...)
}

// truncatedKey returns the longest key that is a whole-word prefix of s and
// not a complete country name.
func (r ZoneResolver) truncatedKey(s string, keys []string) (string, bool) {
	best := ""
	for _, key := range keys {
		if len(key) < minSubstringMatch || r.complete[key] {
			continue
		}
		if !strings.HasPrefix(s, key+" ") {
			continue
		}
		if len(key) > len(best) {
			best = key
		}
	}
	return best, best != ""
}
