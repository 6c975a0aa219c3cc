package queries

import (
	"context"

	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/core/ports"
)

// FindRatesQueryHandler prices a shipment with the loaded rate data.
type FindRatesQueryHandler struct {
	quoter ports.RateQuoter
}

// NewFindRatesQueryHandler creates a handler backed by quoter.
func NewFindRatesQueryHandler(quoter ports.RateQuoter) FindRatesQueryHandler {
	return FindRatesQueryHandler{quoter: quoter}
}

// Handle returns the quote. A quote with no results is not an error.
// The context is checked before pricing; the lookup itself never blocks.
func (h FindRatesQueryHandler) Handle(ctx context.Context, query FindRatesQuery) (rate.Quote, error) {
	if err := query.Validate(); err != nil {
		return rate.Quote{}, err
	}
	if err := ctx.Err(); err != nil {
		return rate.Quote{}, err
	}

	return h.quoter.FindRates(query.Country(), query.WeightKg())
}
