package services

import (
	"slices"
	"strings"

	"ratefinder/internal/core/domain/model/country"
)

// minSubstringMatch is the shortest name that may take part in a
// substring match, on either side.
const minSubstringMatch = 3

// CountryNormalizer canonicalizes free-text destinations.
//
// Resolution order:
//   - alias table ("USA" -> "UNITED STATES")
//   - exact known name
//   - substring match in either direction against known names; the longest
//     name wins and ties go to the alphabetically first
//   - otherwise the trimmed input is returned unchanged
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
type CountryNormalizer struct {
	aliases country.Aliases
	known   []string
	isKnown map[string]bool
}

// NewCountryNormalizer builds a normalizer over the alias table and the
// given country names. Names are folded. Names that are themselves aliases
// are replaced by their canonical form.
//
// Example:
//
//	aliases, _ := country.NewAliases(map[string]string{"UK": "United Kingdom"})
//	n := services.NewCountryNormalizer(aliases, []string{"GERMANY", "UNITED KINGDOM"})
//	n.Normalize(" uk ")   // "UNITED KINGDOM"
//	n.Normalize("German") // "GERMANY"
//	n.Normalize("Mars")   // "Mars"
func NewCountryNormalizer(aliases country.Aliases, names ...[]string) CountryNormalizer {
	n := CountryNormalizer{
		aliases: aliases,
		isKnown: make(map[string]bool),
	}
	add := func(name string) {
		folded := country.Fold(name)
		if canonical, ok := aliases.Lookup(folded); ok {
			folded = canonical
		}
		if folded != "" && !n.isKnown[folded] {
			n.isKnown[folded] = true
			n.known = append(n.known, folded)
		}
	}
	for _, name := range aliases.Canonicals() {
		add(name)
	}
	for _, list := range names {
		for _, name := range list {
			add(name)
		}
	}
	slices.Sort(n.known)
	return n
}

// Normalize never fails and always returns a string.
func (n CountryNormalizer) Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	folded := country.Fold(trimmed)
	if folded == "" {
		return trimmed
	}

	if canonical, ok := n.aliases.Lookup(folded); ok {
		return canonical
	}
	if n.isKnown[folded] {
		return folded
	}
	if best, ok := longestOverlap(folded, n.known); ok {
		return best
	}
	return trimmed
}

// Known returns the folded known names, sorted.
func (n CountryNormalizer) Known() []string {
	return slices.Clone(n.known)
}

// longestOverlap returns the longest candidate that contains s or is
// contained in s. candidates must be sorted so that ties resolve to the
// alphabetically first.
func longestOverlap(s string, candidates []string) (string, bool) {
	best := ""
	for _, c := range candidates {
		shorter := min(len(c), len(s))
		if shorter < minSubstringMatch {
			continue
		}
		if !strings.Contains(c, s) && !strings.Contains(s, c) {
			continue
		}
		if len(c) > len(best) {
			best = c
		}
	}
	return best, best != ""
}
