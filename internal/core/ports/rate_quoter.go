package ports

import (
	"ratefinder/internal/core/domain/model/rate"
)

// RateQuoter prices a shipment against the loaded rate data.
// services.RateFinder is the production implementation.
type RateQuoter interface {
	// FindRates returns every carrier and service that covers the
	// destination at the given weight, cheapest first.
	// Returns an error wrapping services.ErrInvalidInput for a blank
	// country or a weight that is not positive.
	FindRates(country string, weightKg float64) (rate.Quote, error)

	// Carriers lists the carriers present in the rate data.
	Carriers() []string

	// Entries is the number of rate entries loaded.
	Entries() int
}
