package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImporter() *Importer {
	i := NewImporter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	i.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return i
}

func writeSheets(t *testing.T, sheets map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range sheets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestImporter_ImportDir(t *testing.T) {
	dir := writeSheets(t, map[string]string{
		"dhl express csv.csv": "DHL EXPRESS\nWeight,ZONE 7,ZONE 1\n0.5,500,300\n1,950,\n",
		"dhl doc csv.csv":     "DHL DOCUMENTS\nWeight,ZONE 7\n0.5,400\n",
		"ups csv.csv":         "UPS\nWeight,ZONE 6\n2,1800\n",
		"broken csv.csv":      "only a title\n",
		"notes.txt":           "not a sheet",
	})

	doc, report, err := newTestImporter().ImportDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Files)
	assert.Equal(t, []string{"broken csv.csv"}, report.Failed)

	require.Contains(t, doc.Carriers, "DHL")
	dhl := doc.Carriers["DHL"]
	assert.Len(t, dhl.Services, 2)
	assert.Len(t, dhl.Services["Express"]["ZONE 7"], 2)
	assert.Len(t, dhl.Services["Express"]["ZONE 1"], 1)
	assert.Equal(t, []string{"ZONE 1", "ZONE 7"}, dhl.Countries)
	assert.Equal(t, []float64{0.5, 1}, dhl.WeightTiers)

	assert.Equal(t, 2, doc.Metadata.TotalCarriers)
	assert.Equal(t, []float64{0.5, 1, 2}, doc.Metadata.TotalWeightTiers)
	assert.Equal(t, "2024-03-01T10:00:00Z", doc.Metadata.GeneratedAt)
	assert.Len(t, doc.ZoneMappings, 3)

	t.Run("written document loads back", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDocument(&buf, doc))

		var decoded Document
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

		ds := ToDataset(decoded, "roundtrip")
		assert.Len(t, ds.Entries, 5)
		assert.Equal(t, 0, ds.Skipped)
		assert.Equal(t, "6", ds.Zones["UPS"]["UNITED STATES"])
	})
}

func TestImporter_MergesSheetsOfOneService(t *testing.T) {
	dir := writeSheets(t, map[string]string{
		"aramax csv.csv":   "ARAMAX\nWeight,FRANCE\n0.5,700\n",
		"aramax 2 csv.csv": "ARAMAX\nWeight,FRANCE,SPAIN\n1,900,950\n",
	})

	doc, _, err := newTestImporter().ImportDir(dir)
	require.NoError(t, err)

	locations := doc.Carriers["Aramax"].Services["Standard"]
	assert.Len(t, locations["FRANCE"], 2)
	assert.Len(t, locations["SPAIN"], 1)
}

func TestImporter_EmptyDir(t *testing.T) {
	_, _, err := newTestImporter().ImportDir(t.TempDir())

	require.ErrorIs(t, err, ErrNoSheets)
}

func TestSaveDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rates.json")
	doc := Document{Carriers: map[string]CarrierDoc{}, Metadata: Metadata{Source: "CÔTE D'IVOIRE <sheet>"}}

	require.NoError(t, SaveDocument(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CÔTE D'IVOIRE <sheet>")
	assert.Contains(t, string(data), "\n  \"metadata\"")
}
