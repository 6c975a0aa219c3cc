package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/core/ports"
)

var _ ports.DatasetLoader = (*FileLoader)(nil)

// FileLoader reads a master JSON document from disk.
type FileLoader struct {
	path   string
	logger *slog.Logger
}

// NewFileLoader creates a loader for path.
func NewFileLoader(path string, logger *slog.Logger) *FileLoader {
	return &FileLoader{
		path:   path,
		logger: logger.With("component", "dataset_loader"),
	}
}

// Load reads and flattens the document. A missing, unreadable or empty
// file yields an error wrapping rate.ErrDataUnavailable.
func (l *FileLoader) Load(ctx context.Context) (rate.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return rate.Dataset{}, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return rate.Dataset{}, fmt.Errorf("%w: %w", rate.ErrDataUnavailable, err)
	}
	defer f.Close()

	var doc Document
	if err = json.NewDecoder(f).Decode(&doc); err != nil {
		return rate.Dataset{}, fmt.Errorf("%w: decode %s: %w", rate.ErrDataUnavailable, l.path, err)
	}

	ds := ToDataset(doc, l.path)
	if ds.IsEmpty() {
		return rate.Dataset{}, fmt.Errorf("%w: %s holds no rate entries", rate.ErrDataUnavailable, l.path)
	}

	l.logger.InfoContext(ctx, "Rate data loaded",
		"path", l.path,
		"carriers", len(doc.Carriers),
		"entries", len(ds.Entries),
		"skipped", ds.Skipped,
	)
	if ds.Skipped > 0 {
		l.logger.WarnContext(ctx, "Rate cells skipped", "path", l.path, "count", ds.Skipped)
	}

	return ds, nil
}
