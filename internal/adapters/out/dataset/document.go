// Package dataset reads and writes the courier price data: the master JSON
// document the service loads at startup, and the per-carrier CSV price
// sheets it is generated from.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Document is the master JSON file.
//
//	{
//	  "carriers": {"DHL": {"services": {"Express": {"ZONE 7": {"2.5": {"rate": 950, ...}}}}}},
//	  "zone_mappings": {"DHL": {"GERMANY": "7"}},
//	  "aliases": {"DEUTSCHLAND": "GERMANY"},
//	  "metadata": {...}
//	}
type Document struct {
	Carriers     map[string]CarrierDoc        `json:"carriers"`
	ZoneMappings map[string]map[string]ZoneID `json:"zone_mappings,omitempty"`
	Aliases      map[string]string            `json:"aliases,omitempty"`
	Metadata     Metadata                     `json:"metadata"`
}

// CarrierDoc holds service -> location -> weight key -> rate.
type CarrierDoc struct {
	Services    map[string]map[string]map[string]RateDoc `json:"services"`
	Countries   []string                                 `json:"countries,omitempty"`
	WeightTiers []float64                                `json:"weight_tiers,omitempty"`
}

// RateDoc is one price cell. WeightRange is [from, to] for rows such as
// "6-10"; the tier of such a row is its upper bound.
type RateDoc struct {
	Rate        decimal.Decimal `json:"rate"`
	Currency    string          `json:"currency,omitempty"`
	IsPerKg     bool            `json:"is_per_kg"`
	WeightRange *[2]float64     `json:"weight_range"`
}

// Metadata describes how the document was produced.
type Metadata struct {
	GeneratedAt      string    `json:"generated_at,omitempty"`
	Source           string    `json:"source,omitempty"`
	TotalCarriers    int       `json:"total_carriers"`
	TotalCountries   []string  `json:"total_countries,omitempty"`
	TotalWeightTiers []float64 `json:"total_weight_tiers,omitempty"`
}

// ZoneID is a zone value as written by hand: "F", "7" or 7.
type ZoneID string

// UnmarshalJSON accepts a JSON string or number.
func (z *ZoneID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*z = ZoneID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("zone must be a string or a number: %w", err)
	}
	*z = ZoneID(n.String())
	return nil
}

// weightKey renders a tier the way the master file keys it: "0.5", "2", "10".
func weightKey(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}
