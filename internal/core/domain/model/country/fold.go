package country

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents builds a fresh chain per call; chained transformers keep
// internal buffers and must not be shared between goroutines.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold returns the comparison form of a country name. Fold is idempotent.
//
// Example:
//
//	country.Fold("  united   states ") // "UNITED STATES"
//	country.Fold("U.A.E.")             // "UAE"
//	country.Fold("Curaçao")            // "CURACAO"
func Fold(s string) string {
	folded, _, err := transform.String(stripAccents(), s)
	if err != nil {
		folded = s
	}
	folded = strings.ReplaceAll(folded, ".", "")
	return strings.ToUpper(strings.Join(strings.Fields(folded), " "))
}
