package country

import (
	"errors"
	"fmt"
	"slices"

	"ratefinder/internal/pkg/errs"
	"ratefinder/internal/pkg/guard"
)

var ErrAliasesAreNotConstructed = errors.New("Aliases must be created via NewAliases")

// Aliases is a many-to-one table from alternate spellings to canonical
// names. Both sides are stored folded. Chains are resolved when the table is
// built, so a canonical name is never itself an alias.
//
// Example:
//
//	aliases, err := country.NewAliases(map[string]string{
//		"USA": "United States",
//		"US":  "USA",
//		"UK":  "United Kingdom",
//	})
//	aliases.Lookup("u.s.") // "UNITED STATES", true
type Aliases struct {
	canonical map[string]string
	targets   []string

	guard guard.ConstructorGuard
}

// NewAliases folds and validates the pairs. Self-mappings are ignored.
// Blank sides and alias cycles are rejected.
func NewAliases(pairs map[string]string) (Aliases, error) {
	raw := make(map[string]string, len(pairs))
	var validationErrs []error
	for alias, target := range pairs {
		a, t := Fold(alias), Fold(target)
		if a == "" || t == "" {
			validationErrs = append(validationErrs,
				errs.NewValueIsRequiredErrorWithCause("country alias", fmt.Errorf("%q -> %q", alias, target)))
			continue
		}
		if a == t {
			continue
		}
		if prev, ok := raw[a]; ok && prev != t {
			validationErrs = append(validationErrs,
				errs.NewValueIsInvalidErrorWithCause("country alias", fmt.Errorf("%q maps to both %q and %q", a, prev, t)))
			continue
		}
		raw[a] = t
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Aliases{}, err
	}

	resolved := make(map[string]string, len(raw))
	for alias := range raw {
		target, err := resolveChain(raw, alias)
		if err != nil {
			return Aliases{}, err
		}
		resolved[alias] = target
	}

	targets := make([]string, 0, len(resolved))
	for _, t := range resolved {
		if !slices.Contains(targets, t) {
			targets = append(targets, t)
		}
	}
	slices.Sort(targets)

	return Aliases{
		canonical: resolved,
		targets:   targets,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func resolveChain(raw map[string]string, alias string) (string, error) {
	seen := map[string]bool{alias: true}
	current := raw[alias]
	for {
		next, ok := raw[current]
		if !ok {
			return current, nil
		}
		if seen[current] {
			return "", errs.NewValueIsInvalidErrorWithCause("country alias", fmt.Errorf("cycle through %q", current))
		}
		seen[current] = true
		current = next
	}
}

// Lookup folds name and returns its canonical form if name is a known alias.
func (a Aliases) Lookup(name string) (string, bool) {
	c, ok := a.canonical[Fold(name)]
	return c, ok
}

// IsAlias reports whether the folded name is an alternate spelling.
func (a Aliases) IsAlias(name string) bool {
	_, ok := a.canonical[Fold(name)]
	return ok
}

// Canonicals returns the distinct canonical names, sorted.
func (a Aliases) Canonicals() []string {
	return slices.Clone(a.targets)
}

func (a Aliases) Len() int {
	return len(a.canonical)
}

func (a Aliases) Validate() error {
	return a.guard.Validate(ErrAliasesAreNotConstructed)
}
