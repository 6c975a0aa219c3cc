package zone

import (
	"slices"
	"strings"
)

// Assignment is the zone of one carrier for a destination.
type Assignment struct {
	Carrier string
	Token   string
}

// Mapping is the resolved zone of every zoned carrier for one canonical
// country. A carrier without an assignment has no zone for that country and
// is quoted on direct country listings only. The zero value is an empty
// mapping.
type Mapping struct {
	Country string

	assignments []Assignment
}

// NewMapping sorts assignments by carrier. Later assignments for the same
// carrier (compared case-insensitively) are ignored.
func NewMapping(country string, assignments ...Assignment) Mapping {
	m := Mapping{Country: country}
	for _, a := range assignments {
		if a.Token == "" {
			continue
		}
		if _, ok := m.Zone(a.Carrier); ok {
			continue
		}
		m.assignments = append(m.assignments, a)
	}
	slices.SortFunc(m.assignments, func(a, b Assignment) int {
		return strings.Compare(carrierKey(a.Carrier), carrierKey(b.Carrier))
	})
	return m
}

// Zone returns the token assigned to carrier.
func (m Mapping) Zone(carrier string) (string, bool) {
	key := carrierKey(carrier)
	for _, a := range m.assignments {
		if carrierKey(a.Carrier) == key {
			return a.Token, true
		}
	}
	return "", false
}

func (m Mapping) IsEmpty() bool {
	return len(m.assignments) == 0
}

func (m Mapping) Assignments() []Assignment {
	return slices.Clone(m.assignments)
}

// Fields renders the mapping as {"fedex_zone": "F", "dhl_zone": "7"}.
func (m Mapping) Fields() map[string]string {
	fields := make(map[string]string, len(m.assignments))
	for _, a := range m.assignments {
		fields[FieldName(a.Carrier)] = a.Token
	}
	return fields
}

// FieldName returns the external field name for a carrier's zone.
func FieldName(carrier string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(carrier)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + "_zone"
}

func carrierKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
