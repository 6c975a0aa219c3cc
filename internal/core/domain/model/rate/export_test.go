package rate

func (t *Table) IsCached(canonicalCountry string) bool {
	return t.cached(canonicalCountry)
}
