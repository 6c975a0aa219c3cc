package booking

import (
	"errors"
	"fmt"
	"strings"

	"ratefinder/internal/core/domain/model/rate"
	"ratefinder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// QuotedRate is the part of a MatchResult a booking keeps.
type QuotedRate struct {
	Carrier     string
	ServiceType string
	MatchType   rate.MatchType
	Zone        string
	WeightTier  float64
	Amount      decimal.Decimal
	Currency    string
}

// QuotedRateFrom snapshots a match result.
func QuotedRateFrom(r rate.MatchResult) QuotedRate {
	return QuotedRate{
		Carrier:     r.Carrier,
		ServiceType: r.ServiceType,
		MatchType:   r.MatchType,
		Zone:        r.Zone,
		WeightTier:  r.WeightTier,
		Amount:      r.FinalRate,
		Currency:    r.Currency,
	}
}

// Validate checks that the snapshot describes a priced rate.
func (q QuotedRate) Validate() error {
	var problems []error
	if strings.TrimSpace(q.Carrier) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("carrier"))
	}
	if strings.TrimSpace(q.ServiceType) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("service type"))
	}
	if q.MatchType != rate.Direct && q.MatchType != rate.ZoneBased {
		problems = append(problems,
			errs.NewValueIsInvalidErrorWithCause("match type", fmt.Errorf("%q is not a match type", q.MatchType)))
	}
	if !q.Amount.IsPositive() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("quoted rate", q.Amount.String(), "0", "+Inf"))
	}
	if len(q.Currency) != 3 {
		problems = append(problems,
			errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a three letter code", q.Currency)))
	}
	return errors.Join(problems...)
}
