package queries

import (
	"errors"

	"ratefinder/internal/pkg/guard"
)

var (
	ErrGetCarriersQueryIsNotConstructed = errors.New(
		"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
	)
)

// GetCarriersQuery lists the carriers present in the rate data.
type GetCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a parameterless carrier listing query.
func NewGetCarriersQuery() GetCarriersQuery {
	return GetCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

// GetCarriersQueryResponse describes the loaded rate data.
type GetCarriersQueryResponse struct {
	Carriers []string
	Entries  int
}
