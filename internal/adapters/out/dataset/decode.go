package dataset

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"

	"ratefinder/internal/core/domain/model/rate"
)

// ToDataset flattens a document into rate entries.
//
// Carriers, services and locations are visited in sorted order and weights
// ascending, so the same document always yields the same entry order.
// Cells that fail rate.Entry invariants, such as a 0.25kg tier, are
// skipped and counted in Dataset.Skipped. Missing zone tables and aliases
// fall back to DefaultZones and DefaultAliases; aliases in the document
// override the defaults.
func ToDataset(doc Document, source string) rate.Dataset {
	ds := rate.Dataset{
		Zones:   zonesOf(doc),
		Aliases: DefaultAliases(),
		Source:  source,
	}
	maps.Copy(ds.Aliases, doc.Aliases)

	for _, carrier := range sortedKeys(doc.Carriers) {
		services := doc.Carriers[carrier].Services
		for _, service := range sortedKeys(services) {
			locations := services[service]
			for _, location := range sortedKeys(locations) {
				for _, c := range sortedCells(locations[location], &ds.Skipped) {
					e, err := rate.NewEntry(carrier, location, service, c.tier, c.doc.Rate, c.doc.Currency, c.doc.IsPerKg)
					if err != nil {
						ds.Skipped++
						continue
					}
					ds.Entries = append(ds.Entries, e)
				}
			}
		}
	}

	return ds
}

type cell struct {
	tier float64
	doc  RateDoc
}

// sortedCells parses weight keys and orders the cells by tier. Keys that
// are not numbers are counted as skipped.
func sortedCells(weights map[string]RateDoc, skipped *int) []cell {
	cells := make([]cell, 0, len(weights))
	for key, doc := range weights {
		tier, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
		if err != nil {
			*skipped++
			continue
		}
		if doc.WeightRange != nil {
			tier = doc.WeightRange[1]
		}
		cells = append(cells, cell{tier: tier, doc: doc})
	}
	slices.SortStableFunc(cells, func(a, b cell) int {
		if c := cmp.Compare(a.tier, b.tier); c != 0 {
			return c
		}
		return cmp.Compare(a.doc.Rate.String(), b.doc.Rate.String())
	})
	return cells
}

func zonesOf(doc Document) map[string]map[string]string {
	if len(doc.ZoneMappings) == 0 {
		return DefaultZones()
	}
	zones := make(map[string]map[string]string, len(doc.ZoneMappings))
	for carrier, table := range doc.ZoneMappings {
		out := make(map[string]string, len(table))
		for name, z := range table {
			out[name] = string(z)
		}
		zones[carrier] = out
	}
	return zones
}

func sortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(strings.ToUpper(a), strings.ToUpper(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return keys
}

// summarize fills the per-carrier country and tier lists and the totals.
func summarize(doc *Document) {
	allCountries := make(map[string]bool)
	allTiers := make(map[float64]bool)

	for name, c := range doc.Carriers {
		countries := make(map[string]bool)
		tiers := make(map[float64]bool)
		for _, locations := range c.Services {
			for location, weights := range locations {
				countries[location] = true
				allCountries[location] = true
				for key, r := range weights {
					tier, err := strconv.ParseFloat(key, 64)
					if err != nil {
						continue
					}
					if r.WeightRange != nil {
						tier = r.WeightRange[1]
					}
					tiers[tier] = true
					allTiers[tier] = true
				}
			}
		}
		c.Countries = slices.Sorted(maps.Keys(countries))
		c.WeightTiers = slices.Sorted(maps.Keys(tiers))
		doc.Carriers[name] = c
	}

	doc.Metadata.TotalCarriers = len(doc.Carriers)
	doc.Metadata.TotalCountries = slices.Sorted(maps.Keys(allCountries))
	doc.Metadata.TotalWeightTiers = slices.Sorted(maps.Keys(allTiers))
}
