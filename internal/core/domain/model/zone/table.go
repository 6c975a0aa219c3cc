package zone

import (
	"slices"
	"strings"

	"ratefinder/internal/core/domain/model/country"
)

// Table assigns destination countries to zones, per carrier. It is built
// once and read-only afterwards.
type Table struct {
	carriers []carrierZones
}

type carrierZones struct {
	name      string
	scheme    Scheme
	zones     map[string]string
	countries []string
}

// NewTable builds a Table from raw carrier -> country -> zone value data.
// Country keys are folded and resolved through aliases. When a folded key
// and an alias resolve to the same country, the folded key wins. Zone values
// that do not parse under the carrier's scheme are dropped and counted.
//
// Example:
//
//	table, dropped := zone.NewTable(map[string]map[string]string{
//		"FedEx": {"GERMANY": "F", "U.S.A.": "G"},
//		"DHL":   {"GERMANY": "7"},
//	}, aliases)
//	table.Lookup("fedex", "UNITED STATES") // "G", true
func NewTable(raw map[string]map[string]string, aliases country.Aliases) (*Table, int) {
	t := &Table{}
	dropped := 0

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int { return strings.Compare(carrierKey(a), carrierKey(b)) })

	for _, name := range names {
		if carrierKey(name) == "" {
			continue
		}
		cz := carrierZones{
			name:   strings.TrimSpace(name),
			scheme: SchemeFor(name),
			zones:  make(map[string]string),
		}
		if i := t.index(name); i >= 0 {
			cz = t.carriers[i]
		}

		keys := make([]string, 0, len(raw[name]))
		for k := range raw[name] {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		var aliased []string
		for _, k := range keys {
			folded := country.Fold(k)
			if folded == "" {
				continue
			}
			if aliases.IsAlias(folded) {
				aliased = append(aliased, k)
				continue
			}
			if !cz.put(folded, raw[name][k]) {
				dropped++
			}
		}
		for _, k := range aliased {
			canonical, _ := aliases.Lookup(k)
			if _, taken := cz.zones[canonical]; taken {
				continue
			}
			if !cz.put(canonical, raw[name][k]) {
				dropped++
			}
		}

		if i := t.index(name); i >= 0 {
			t.carriers[i] = cz
		} else {
			t.carriers = append(t.carriers, cz)
		}
	}

	for i := range t.carriers {
		cz := &t.carriers[i]
		cz.countries = make([]string, 0, len(cz.zones))
		for c := range cz.zones {
			cz.countries = append(cz.countries, c)
		}
		slices.Sort(cz.countries)
	}

	return t, dropped
}

func (cz *carrierZones) put(countryKey, value string) bool {
	token, err := cz.scheme.Parse(value)
	if err != nil {
		return false
	}
	if _, exists := cz.zones[countryKey]; !exists {
		cz.zones[countryKey] = token
	}
	return true
}

func (t *Table) index(carrier string) int {
	key := carrierKey(carrier)
	for i, cz := range t.carriers {
		if carrierKey(cz.name) == key {
			return i
		}
	}
	return -1
}

// Lookup returns the zone token of a canonical country for carrier.
func (t *Table) Lookup(carrier, canonicalCountry string) (string, bool) {
	i := t.index(carrier)
	if i < 0 {
		return "", false
	}
	token, ok := t.carriers[i].zones[country.Fold(canonicalCountry)]
	return token, ok
}

// Carriers returns the zoned carriers, sorted case-insensitively.
func (t *Table) Carriers() []string {
	names := make([]string, 0, len(t.carriers))
	for _, cz := range t.carriers {
		names = append(names, cz.name)
	}
	return names
}

// Countries returns the sorted country keys of carrier.
func (t *Table) Countries(carrier string) []string {
	i := t.index(carrier)
	if i < 0 {
		return nil
	}
	return slices.Clone(t.carriers[i].countries)
}

// Names returns every distinct country key of every carrier, sorted.
func (t *Table) Names() []string {
	var names []string
	for _, cz := range t.carriers {
		names = append(names, cz.countries...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func (t *Table) HasCarrier(carrier string) bool {
	return t.index(carrier) >= 0
}

// Len returns the number of (carrier, country) assignments.
func (t *Table) Len() int {
	n := 0
	for _, cz := range t.carriers {
		n += len(cz.zones)
	}
	return n
}
