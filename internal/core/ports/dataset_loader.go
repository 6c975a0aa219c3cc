package ports

import (
	"context"

	"ratefinder/internal/core/domain/model/rate"
)

// DatasetLoader reads the rate data the finder is built from.
//
// Implementations return rate.ErrDataUnavailable (possibly wrapped) when
// the source is missing or holds no usable entries.
type DatasetLoader interface {
	Load(ctx context.Context) (rate.Dataset, error)
}
