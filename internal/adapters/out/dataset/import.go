package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// ErrNoSheets is returned when a directory holds no readable price sheets.
var ErrNoSheets = errors.New("no price sheets found")

// ImportReport summarises a directory import.
type ImportReport struct {
	Files   int
	Failed  []string
	Skipped int
}

// Importer turns a directory of CSV price sheets into a master document.
type Importer struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewImporter creates an importer.
func NewImporter(logger *slog.Logger) *Importer {
	return &Importer{
		logger: logger.With("component", "csv_importer"),
		now:    time.Now,
	}
}

// ImportDir reads every *.csv file in dir. Sheets of the same carrier are
// merged service by service; a sheet that fails to parse is logged and left
// out. The built-in zone tables are written as zone_mappings.
func (i *Importer) ImportDir(dir string) (Document, ImportReport, error) {
	var report ImportReport

	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return Document{}, report, err
	}
	slices.Sort(paths)

	doc := Document{
		Carriers:     make(map[string]CarrierDoc),
		ZoneMappings: make(map[string]map[string]ZoneID),
	}

	for _, path := range paths {
		sheet, err := readSheet(path)
		if err != nil {
			i.logger.Error("Failed to read price sheet", "file", filepath.Base(path), "error", err)
			report.Failed = append(report.Failed, filepath.Base(path))
			continue
		}

		report.Files++
		report.Skipped += sheet.Skipped
		mergeSheet(&doc, sheet)

		i.logger.Info("Price sheet imported",
			"file", filepath.Base(path),
			"carrier", sheet.Carrier,
			"service", sheet.Service,
			"locations", len(sheet.Rates),
		)
	}

	if report.Files == 0 {
		return Document{}, report, fmt.Errorf("%w in %s", ErrNoSheets, dir)
	}

	for carrier, table := range DefaultZones() {
		zones := make(map[string]ZoneID, len(table))
		for name, z := range table {
			zones[name] = ZoneID(z)
		}
		doc.ZoneMappings[carrier] = zones
	}

	doc.Metadata.GeneratedAt = i.now().UTC().Format(time.RFC3339)
	doc.Metadata.Source = "CSV price sheets from " + dir
	summarize(&doc)

	return doc, report, nil
}

func readSheet(path string) (Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sheet{}, err
	}
	defer f.Close()
	return ParseSheet(filepath.Base(path), f)
}

func mergeSheet(doc *Document, sheet Sheet) {
	c, ok := doc.Carriers[sheet.Carrier]
	if !ok {
		c.Services = make(map[string]map[string]map[string]RateDoc)
	}

	locations, ok := c.Services[sheet.Service]
	if !ok {
		locations = make(map[string]map[string]RateDoc)
		c.Services[sheet.Service] = locations
	}
	for location, weights := range sheet.Rates {
		if len(weights) == 0 {
			continue
		}
		if locations[location] == nil {
			locations[location] = make(map[string]RateDoc, len(weights))
		}
		maps.Copy(locations[location], weights)
	}

	doc.Carriers[sheet.Carrier] = c
}

// WriteDocument encodes doc as indented JSON. Non-ASCII names are written
// as is.
func WriteDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode rate document: %w", err)
	}
	return nil
}

// SaveDocument writes doc to path, replacing any existing file.
func SaveDocument(path string, doc Document) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteDocument(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
