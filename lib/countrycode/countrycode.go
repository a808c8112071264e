package countrycode

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/pariz/gountries"
)

// names the catalog spells differently than the sources that cite
// the official ISO 3166 form. checked only after an exact catalog
// lookup misses.
var isoSpellings = map[string]string{
	"taiwan, province of china": "TW",
}

// Resolver maps country names to ISO 3166 alpha-3 codes using the
// embedded gountries dataset. The catalog is read-only after New.
type Resolver struct {
	query *gountries.Query

	// catalog common names, sorted, for Suggest
	names []string
}

func NewResolver() *Resolver {
	query := gountries.New()

	var names []string
	for _, country := range query.FindAllCountries() {
		names = append(names, country.Name.Common)
	}
	sort.Strings(names)

	return &Resolver{
		query: query,
		names: names,
	}
}

// Resolve looks up a country name and returns its alpha-3 code.
// A name missing from the catalog is not an error: ok is false and
// the caller decides what to do with the miss. A non-nil error means
// the catalog itself is in a bad state.
func (r *Resolver) Resolve(name string) (code string, ok bool, err error) {
	country, findErr := r.query.FindCountryByName(name)
	if findErr != nil {
		alpha2, aliased := isoSpellings[strings.ToLower(name)]
		if !aliased {
			return "", false, nil
		}
		country, findErr = r.query.FindCountryByAlpha(alpha2)
		if findErr != nil {
			return "", false, fmt.Errorf("iso spelling %q points at unknown code %q: %w", name, alpha2, findErr)
		}
	}
	if country.Alpha3 == "" {
		return "", false, fmt.Errorf("catalog entry for %q has no alpha-3 code", name)
	}
	return country.Alpha3, true, nil
}

// RegionName returns the catalog's common name for an alpha-2 or
// alpha-3 code.
func (r *Resolver) RegionName(code string) (string, error) {
	country, err := r.query.FindCountryByAlpha(code)
	if err != nil {
		return "", fmt.Errorf("unknown country code %q: %w", code, err)
	}
	return country.Name.Common, nil
}

// Suggest returns the catalog name closest to the given name by
// Levenshtein distance. Diagnostics only, never used for resolution.
func (r *Resolver) Suggest(name string) string {
	lowered := strings.ToLower(name)

	best := ""
	bestDistance := -1
	for _, candidate := range r.names {
		distance := matchr.Levenshtein(lowered, strings.ToLower(candidate))
		if bestDistance < 0 || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}
