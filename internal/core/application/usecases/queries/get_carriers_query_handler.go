package queries

import (
	"context"
	"slices"

	"ratefinder/internal/core/ports"
)

// GetCarriersQueryHandler reports the carriers of the rate data.
type GetCarriersQueryHandler struct {
	quoter ports.RateQuoter
}

// NewGetCarriersQueryHandler creates a handler backed by quoter.
func NewGetCarriersQueryHandler(quoter ports.RateQuoter) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{quoter: quoter}
}

// Handle returns the carriers as the quoter lists them.
// The returned slice is a copy.
func (h GetCarriersQueryHandler) Handle(_ context.Context, query GetCarriersQuery) (GetCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarriersQueryResponse{}, err
	}

	carriers := slices.Clone(h.quoter.Carriers())
	if carriers == nil {
		carriers = []string{}
	}

	return GetCarriersQueryResponse{
		Carriers: carriers,
		Entries:  h.quoter.Entries(),
	}, nil
}
