package rate

import (
	"slices"
	"strings"
	"sync"

	"ratefinder/internal/core/domain/model/country"
	"ratefinder/internal/core/domain/model/zone"
)

// regionWords are the first words of a sub-region suffix, as in
// "AUSTRALIA METRO" or "NEW ZEALAND ZONE 1".
var regionWords = map[string]bool{
	"METRO":     true,
	"NON-METRO": true,
	"NON":       true,
	"REGIONAL":  true,
	"REMOTE":    true,
	"REST":      true,
	"OTHER":     true,
	"OTHERS":    true,
	"ZONE":      true,
	"MAJOR":     true,
	"MAIN":      true,
}

// Listing is the entries one carrier publishes under one key, sorted by
// tier. Region is set for sub-region listings of a country. Entries is
// shared with the Table and must not be modified.
type Listing struct {
	Key     string
	Region  string
	Entries []Entry
}

// Table indexes entries by (carrier, listing key). It is read-only after
// NewTable returns, apart from the per-country listing cache, and is safe
// for concurrent use.
type Table struct {
	carriers []string
	index    map[string]map[string][]Entry
	keys     map[string][]string
	size     int

	mu    sync.RWMutex
	cache map[string]map[string][]Listing
}

// NewTable builds the index.
//
// Zone-like keys are rewritten to zone.Key form under the carrier's scheme.
// Bare numeric keys count as zones only for carriers listed in zoned. Other
// keys that are aliases are rewritten to their canonical country. Entries
// sharing a key keep their relative order when sorted by tier.
//
// Returns ErrDataUnavailable when entries is empty.
func NewTable(entries []Entry, zoned []string, aliases country.Aliases) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrDataUnavailable
	}

	zonedSet := make(map[string]bool, len(zoned))
	for _, c := range zoned {
		zonedSet[carrierKey(c)] = true
	}

	t := &Table{
		index: make(map[string]map[string][]Entry),
		keys:  make(map[string][]string),
		cache: make(map[string]map[string][]Listing),
	}

	for _, e := range entries {
		ck := carrierKey(e.carrier)
		if _, ok := t.index[ck]; !ok {
			t.index[ck] = make(map[string][]Entry)
			t.carriers = append(t.carriers, e.carrier)
		}
		if token, ok := zone.SchemeFor(e.carrier).ParseKey(e.key, zonedSet[ck]); ok {
			e.key = zone.Key(token)
		} else if canonical, ok := aliases.Lookup(e.key); ok {
			e.key = canonical
		}
		t.index[ck][e.key] = append(t.index[ck][e.key], e)
		t.size++
	}

	for ck, byKey := range t.index {
		keys := make([]string, 0, len(byKey))
		for k, list := range byKey {
			slices.SortStableFunc(list, func(a, b Entry) int {
				switch {
				case a.tier < b.tier:
					return -1
				case a.tier > b.tier:
					return 1
				default:
					return 0
				}
			})
			keys = append(keys, k)
		}
		slices.Sort(keys)
		t.keys[ck] = keys
	}

	slices.SortFunc(t.carriers, func(a, b string) int {
		return strings.Compare(carrierKey(a), carrierKey(b))
	})

	return t, nil
}

// Lookup returns the entries of carrier under key, ascending by tier. The
// result is empty, not nil-erroring, when nothing is listed.
func (t *Table) Lookup(carrier, key string) []Entry {
	return slices.Clone(t.index[carrierKey(carrier)][country.Fold(key)])
}

// Carriers returns every carrier with at least one entry, sorted
// case-insensitively.
func (t *Table) Carriers() []string {
	return slices.Clone(t.carriers)
}

// Keys returns the sorted listing keys of carrier.
func (t *Table) Keys(carrier string) []string {
	return slices.Clone(t.keys[carrierKey(carrier)])
}

// Len returns the number of indexed entries.
func (t *Table) Len() int {
	return t.size
}

// CountryListings returns the listings of carrier that serve a canonical
// country: the country's own listing first, then its sub-regions sorted by
// key. Results for countries with any listing are cached until restart.
func (t *Table) CountryListings(carrier, canonicalCountry string) []Listing {
	c := country.Fold(canonicalCountry)
	if c == "" {
		return nil
	}

	t.mu.RLock()
	byCarrier, hit := t.cache[c]
	t.mu.RUnlock()

	if !hit {
		byCarrier = t.collect(c)
		if len(byCarrier) > 0 {
			t.mu.Lock()
			if cached, ok := t.cache[c]; ok {
				byCarrier = cached
			} else {
				t.cache[c] = byCarrier
			}
			t.mu.Unlock()
		}
	}

	return slices.Clone(byCarrier[carrierKey(carrier)])
}

func (t *Table) collect(c string) map[string][]Listing {
	found := make(map[string][]Listing)
	prefix := c + " "
	for ck, byKey := range t.index {
		var listings []Listing
		if entries, ok := byKey[c]; ok {
			listings = append(listings, Listing{Key: c, Entries: entries})
		}
		for _, k := range t.keys[ck] {
			region, ok := strings.CutPrefix(k, prefix)
			if !ok || !isRegion(region) {
				continue
			}
			listings = append(listings, Listing{Key: k, Region: region, Entries: byKey[k]})
		}
		if len(listings) > 0 {
			found[ck] = listings
		}
	}
	return found
}

func (t *Table) cached(c string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.cache[country.Fold(c)]
	return ok
}

// Countries returns every listing key that is not a zone key, across all
// carriers, sorted and without duplicates.
func (t *Table) Countries() []string {
	var names []string
	for _, keys := range t.keys {
		for _, k := range keys {
			if !strings.HasPrefix(k, zone.Key("")) {
				names = append(names, k)
			}
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// RegionBase returns the country a sub-region key belongs to, as
// "NEW ZEALAND" for "NEW ZEALAND ZONE 1".
func RegionBase(key string) (string, bool) {
	k := country.Fold(key)
	for i := strings.IndexByte(k, ' '); i > 0; {
		if isRegion(k[i+1:]) {
			return k[:i], true
		}
		j := strings.IndexByte(k[i+1:], ' ')
		if j < 0 {
			break
		}
		i += j + 1
	}
	return "", false
}

// IsRegionOf reports whether key is a sub-region listing of the canonical
// country, as "AUSTRALIA METRO" is of "AUSTRALIA".
func IsRegionOf(key, canonicalCountry string) bool {
	region, ok := strings.CutPrefix(country.Fold(key), country.Fold(canonicalCountry)+" ")
	return ok && isRegion(region)
}

func isRegion(suffix string) bool {
	first, _, _ := strings.Cut(suffix, " ")
	return regionWords[first]
}

func carrierKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
