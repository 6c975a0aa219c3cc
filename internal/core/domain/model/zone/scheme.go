package zone

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"ratefinder/internal/pkg/errs"
)

// Scheme is the zone naming convention of one carrier.
type Scheme int

const (
	Alphanumeric Scheme = iota
	Letter
	Numeric
)

const (
	letterMin  = 'A'
	letterMax  = 'Q'
	numericMin = 1
	numericMax = 14

	alphanumericMaxLen = 4

	keyPrefix = "ZONE "
)

// SchemeFor picks the scheme by carrier name.
func SchemeFor(carrier string) Scheme {
	name := strings.ToUpper(carrier)
	switch {
	case strings.Contains(name, "FEDEX"):
		return Letter
	case strings.Contains(name, "DHL"):
		return Numeric
	default:
		return Alphanumeric
	}
}

func (s Scheme) String() string {
	switch s {
	case Letter:
		return "letter"
	case Numeric:
		return "numeric"
	default:
		return "alphanumeric"
	}
}

// Key returns the rate table key for a canonical zone token.
func Key(token string) string {
	return keyPrefix + token
}

// Parse normalizes a zone value from a zone table into the canonical token
// of the scheme. Prefixes "ZONE" and "Z" and separators are ignored.
//
// Example:
//
//	zone.Numeric.Parse("Zone-III") // "3", nil
//	zone.Letter.Parse("ZONEF")     // "F", nil
//	zone.Letter.Parse("R")         // "", ValueIsOutOfRangeError
func (s Scheme) Parse(raw string) (string, error) {
	body := stripPrefix(clean(raw))
	if body == "" {
		return "", errs.NewValueIsRequiredErrorWithCause("zone", fmt.Errorf("no token in %q", raw))
	}
	return s.token(body, raw)
}

// ParseKey recognizes a zone-like listing key in a rate table and returns
// its canonical token. Only explicit forms ("ZONE A", "ZONEA", "Z3") are
// recognized, plus bare digits when bare is set. Country names are never
// taken for zones, so "ZIMBABWE" and "ZAMBIA" are not keys.
func (s Scheme) ParseKey(key string, bare bool) (string, bool) {
	c := clean(key)
	var body string
	switch {
	case strings.HasPrefix(c, "ZONE"):
		body = strings.TrimLeft(c[len("ZONE"):], " -_:")
	case strings.HasPrefix(c, "Z") && len(c) > 1 && len(c) <= 4:
		body = strings.TrimLeft(c[1:], " -_:")
	case bare && isDigits(c):
		body = c
	default:
		return "", false
	}
	if body == "" {
		return "", false
	}
	token, err := s.token(body, key)
	if err != nil {
		return "", false
	}
	return token, true
}

func (s Scheme) token(body, raw string) (string, error) {
	body = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(body)

	switch s {
	case Letter:
		if len(body) != 1 || body[0] < letterMin || body[0] > letterMax {
			return "", errs.NewValueIsOutOfRangeErrorWithCause("fedex zone", raw, string(letterMin), string(letterMax),
				fmt.Errorf("expected a single letter"))
		}
		return body, nil

	case Numeric:
		n, ok := parseNumber(body)
		if !ok || n < numericMin || n > numericMax {
			return "", errs.NewValueIsOutOfRangeError("dhl zone", raw, numericMin, numericMax)
		}
		return strconv.Itoa(n), nil

	default:
		if len(body) > alphanumericMaxLen || !isAlphanumeric(body) {
			return "", errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("unrecognized token %q", raw))
		}
		if n, err := strconv.Atoi(body); err == nil {
			return strconv.Itoa(n), nil
		}
		if n, ok := parseRoman(body); ok {
			return strconv.Itoa(n), nil
		}
		return body, nil
	}
}

func clean(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), " "))
}

func stripPrefix(c string) string {
	switch {
	case strings.HasPrefix(c, "ZONE"):
		return strings.TrimLeft(c[len("ZONE"):], " -_:")
	case strings.HasPrefix(c, "Z") && len(c) > 1:
		return strings.TrimLeft(c[1:], " -_:")
	default:
		return c
	}
}

func parseNumber(body string) (int, bool) {
	if isDigits(body) {
		n, err := strconv.Atoi(body)
		return n, err == nil
	}
	return parseRoman(body)
}

var romanValues = map[byte]int{'I': 1, 'V': 5, 'X': 10}

// parseRoman accepts the canonical numerals from I to XXXIX.
func parseRoman(s string) (int, bool) {
	if s == "" || len(s) > 8 {
		return 0, false
	}
	total := 0
	for i := 0; i < len(s); i++ {
		v, ok := romanValues[s[i]]
		if !ok {
			return 0, false
		}
		if i+1 < len(s) && romanValues[s[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	if total <= 0 || toRoman(total) != s {
		return 0, false
	}
	return total, true
}

func toRoman(n int) string {
	var b strings.Builder
	for _, step := range []struct {
		value  int
		symbol string
	}{{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"}} {
		for n >= step.value {
			b.WriteString(step.symbol)
			n -= step.value
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return s != ""
}
