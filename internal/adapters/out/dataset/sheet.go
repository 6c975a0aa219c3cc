package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrSheetTooShort is returned for a price sheet without a header row.
var ErrSheetTooShort = errors.New("price sheet needs a title line and a header line")

// Sheet is one parsed CSV price sheet: a single carrier and service.
type Sheet struct {
	Carrier string
	Service string

	// Rates maps location -> weight key -> rate.
	Rates map[string]map[string]RateDoc

	// Skipped counts rows and cells that could not be read.
	Skipped int
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

var weightHeaders = map[string]bool{"": true, "weight": true, "weight (kg)": true, "weight_kg": true}

// ParseSheet reads a price sheet. Line 1 is a title and is ignored, line 2
// is the header "Weight, <COUNTRY>, <COUNTRY/OTHER>...", then one row per
// weight. The carrier and service are taken from the file name.
//
// Weight cells:
//   - "0.5", "2"          flat tier
//   - "6-10"              range, tier is the upper bound
//   - "21/kg"             per-kilogram rate from the 21kg tier
//   - "Dox 500 Gm"        grams, converted to kilograms
//
// Rate cells that are blank, "0" or "-" are skipped silently; thousands
// separators are removed.
func ParseSheet(filename string, r io.Reader) (Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Sheet{}, fmt.Errorf("read %s: %w", filename, err)
	}
	if len(records) < 2 {
		return Sheet{}, fmt.Errorf("%s: %w", filename, ErrSheetTooShort)
	}

	sheet := Sheet{
		Carrier: CarrierName(filename),
		Service: ServiceType(filename),
		Rates:   make(map[string]map[string]RateDoc),
	}

	columns := headerColumns(records[1])
	for _, name := range columns {
		if name != "" {
			sheet.Rates[name] = make(map[string]RateDoc)
		}
	}

	for _, row := range records[2:] {
		if len(row) < 2 || weightHeaders[strings.ToLower(strings.TrimSpace(row[0]))] {
			continue
		}

		w, ok := parseWeightCell(row[0])
		if !ok {
			sheet.Skipped++
			continue
		}

		for i, raw := range row[1:] {
			if i >= len(columns) || columns[i] == "" {
				break
			}
			amount, ok, bad := parseRateCell(raw)
			if bad {
				sheet.Skipped++
			}
			if !ok {
				continue
			}
			sheet.Rates[columns[i]][weightKey(w.tier)] = RateDoc{
				Rate:        amount,
				Currency:    "INR",
				IsPerKg:     w.perKg,
				WeightRange: w.span,
			}
		}
	}

	return sheet, nil
}

// headerColumns cleans the location headers after the weight column.
// "BAHRAIN/OMAN/KUWAIT" keeps the first name; "*", "(" and ")" are removed.
func headerColumns(header []string) []string {
	if len(header) < 2 {
		return nil
	}
	columns := make([]string, len(header)-1)
	for i, h := range header[1:] {
		h = strings.TrimSpace(h)
		if weightHeaders[strings.ToLower(h)] {
			continue
		}
		name := strings.ToUpper(h)
		if first, _, found := strings.Cut(name, "/"); found {
			name = first
		}
		name = strings.NewReplacer("*", "", "(", "", ")", "").Replace(name)
		columns[i] = strings.TrimSpace(name)
	}
	return columns
}

type weightCell struct {
	tier  float64
	perKg bool
	span  *[2]float64
}

func parseWeightCell(raw string) (weightCell, bool) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)

	switch {
	case strings.Contains(lower, "/kg"):
		n, ok := firstNumber(s)
		return weightCell{tier: n, perKg: true}, ok

	case strings.Count(s, "-") == 1:
		from, to, _ := strings.Cut(s, "-")
		a, errA := strconv.ParseFloat(strings.TrimSpace(from), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(to), 64)
		if errA != nil || errB != nil {
			return weightCell{}, false
		}
		return weightCell{tier: b, span: &[2]float64{a, b}}, true
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return weightCell{tier: n}, true
	}

	n, ok := firstNumber(s)
	if !ok {
		return weightCell{}, false
	}
	if strings.Contains(lower, "gm") || strings.Contains(lower, "gram") {
		n /= 1000
	}
	return weightCell{tier: n}, true
}

func firstNumber(s string) (float64, bool) {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	return n, err == nil
}

// parseRateCell returns the amount and whether to keep it. bad is set for
// cells that hold something other than a number.
func parseRateCell(raw string) (amount decimal.Decimal, ok, bad bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "0" || s == "-" {
		return decimal.Zero, false, false
	}
	s = strings.NewReplacer(",", "", "/kg", "", "/KG", "").Replace(s)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false, true
	}
	if !d.IsPositive() {
		return decimal.Zero, false, false
	}
	return d, true, false
}

// CarrierName derives the carrier from a sheet file name such as
// "dhl express csv.csv" or "skynet aus nz csv.csv".
func CarrierName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if before, _, found := strings.Cut(base, " csv"); found {
		base = before
	}
	base = strings.TrimSpace(base)
	lower := strings.ToLower(base)

	switch {
	case strings.Contains(lower, "aramax"):
		return "Aramax"
	case strings.Contains(lower, "purolator"):
		return "Purolator"
	case strings.Contains(lower, "ups"):
		return "UPS"
	case strings.Contains(lower, "dhl"):
		return "DHL"
	case strings.Contains(lower, "fedex"):
		return "FedEx"
	case strings.Contains(lower, "dpex"):
		return "DPEX"
	case strings.Contains(lower, "dpd"):
		switch {
		case strings.Contains(lower, "fast"):
			return "DPD Fast"
		case strings.Contains(lower, "std"):
			return "DPD Standard"
		}
		return "DPD"
	case strings.Contains(lower, "skynet"):
		switch {
		case strings.Contains(lower, "aus nz"):
			return "Skynet Australia/NZ"
		case strings.Contains(lower, "europe"):
			return "Skynet Europe"
		case strings.Contains(lower, "all"):
			return "Skynet All"
		}
		return "Skynet"
	case strings.Contains(lower, "skysaver"):
		return "SkySaver"
	}
	return cases.Title(language.English).String(lower)
}

// ServiceType derives the service from a sheet file name.
func ServiceType(filename string) string {
	lower := strings.ToLower(filepath.Base(filename))
	switch {
	case strings.Contains(lower, "non doc"):
		return "Non-Document"
	case strings.Contains(lower, "doc") && !strings.Contains(lower, "non"):
		return "Document"
	case strings.Contains(lower, "fast"):
		return "Fast"
	case strings.Contains(lower, "express"):
		return "Express"
	}
	return "Standard"
}
