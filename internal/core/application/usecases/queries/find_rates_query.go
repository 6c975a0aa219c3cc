// Package queries contains read-only operations. Rate queries run against
// the in-memory rate index; booking queries read the database directly.
package queries

import (
	"errors"

	"ratefinder/internal/pkg/guard"
)

var (
	ErrFindRatesQueryIsNotConstructed = errors.New(
		"FindRatesQuery must be created via NewFindRatesQuery constructor",
	)
)

// FindRatesQuery asks for every rate to country at weightKg.
// Input validation is left to the rate finder so that it reports the
// same errors for every caller.
//
// Example:
//
//	query := NewFindRatesQuery("Germany", 2.2)
//	handler := NewFindRatesQueryHandler(finder)
//
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to find rates: %w", err)
//	}
//	for _, r := range quote.Results {
//	    fmt.Printf("%s %s: %s %s\n", r.Carrier, r.ServiceType, r.FinalRate, r.Currency)
//	}
type FindRatesQuery struct {
	country  string
	weightKg float64

	guard guard.ConstructorGuard
}

// NewFindRatesQuery creates a rate lookup query.
func NewFindRatesQuery(country string, weightKg float64) FindRatesQuery {
	return FindRatesQuery{country: country, weightKg: weightKg, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q FindRatesQuery) Validate() error {
	return q.guard.Validate(ErrFindRatesQueryIsNotConstructed)
}

func (q FindRatesQuery) Country() string   { return q.country }
func (q FindRatesQuery) WeightKg() float64 { return q.weightKg }
