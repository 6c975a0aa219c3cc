package services

import (
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/core/domain/model/rate"
)

// TierMatcher applies the ceiling rule: a weight is priced at the smallest
// tier that is greater than or equal to it.
//
// When several entries share the winning tier the earliest one wins. Such
// duplicates are a data quality problem in the price sheets; the rule only
// keeps the outcome deterministic.
type TierMatcher struct{}

func NewTierMatcher() TierMatcher {
	return TierMatcher{}
}

// Match returns the covering entry, or false when w exceeds every tier.
//
// Parameters:
//   - entries: one listing, normally ascending by tier as rate.Table returns it
//   - w: requested weight
//
// Example:
//
//	// tiers 1, 2, 3, 5
//	e, ok := matcher.Match(entries, kernel.MustNewWeight(2.3)) // tier 3, true
//	_, ok = matcher.Match(entries, kernel.MustNewWeight(7))    // false
func (TierMatcher) Match(entries []rate.Entry, w kernel.Weight) (rate.Entry, bool) {
	var (
		best  rate.Entry
		found bool
	)
	for _, e := range entries {
		if !w.Covers(e.Tier()) {
			continue
		}
		if !found || e.Tier() < best.Tier() {
			best = e
			found = true
		}
	}
	return best, found
}
