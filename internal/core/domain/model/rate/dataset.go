package rate

import "errors"

// ErrDataUnavailable is returned when the price data is missing or holds no
// usable entries. The service cannot start without it.
var ErrDataUnavailable = errors.New("rate data unavailable")

// Dataset is everything loaded from the price data at startup.
type Dataset struct {
	// Entries in source order. Source order decides ties between
	// duplicate tiers.
	Entries []Entry

	// Zones holds carrier -> country -> raw zone value.
	Zones map[string]map[string]string

	// Aliases holds alternate spelling -> canonical country name.
	Aliases map[string]string

	// Source names where the data came from, e.g. a file path.
	Source string

	// Skipped counts source rows that failed Entry invariants.
	Skipped int
}

func (d Dataset) IsEmpty() bool {
	return len(d.Entries) == 0
}

// Carriers returns carrier display names in order of first appearance.
func (d Dataset) Carriers() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range d.Entries {
		key := carrierKey(e.carrier)
		if !seen[key] {
			seen[key] = true
			names = append(names, e.carrier)
		}
	}
	return names
}
