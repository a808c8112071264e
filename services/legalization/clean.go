package legalization

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"marriagemap/lib/scrapers/wikipedia"
)

// Record is one country with the year its legalization took effect.
type Record struct {
	Year    int
	Country string
}

var ErrBadYear = errors.New("year is not an integer")

// countryAliases rewrites source names the code catalog does not
// know: the pre-devolution jurisdiction to its sovereign state, the
// disputed territory to its catalog name.
var countryAliases = map[string]string{
	"England and Wales": "United Kingdom",
	"Taiwan":            "Taiwan, Province of China",
}

// rows carrying this year value have no legalization date yet and
// are excluded. case-sensitive literal.
const pendingSentinel = "Pending"

// Clean expands each timeline row into one record per country token,
// applies the alias rewrites, drops pending rows and coerces the
// year. A non-numeric year after the pending filter is a hard stop,
// that shape of data means the source changed underneath us.
func Clean(rows []wikipedia.TimelineRow) ([]Record, error) {
	var records []Record
	for _, row := range rows {
		if strings.TrimSpace(row.Year) == "" || strings.TrimSpace(row.Country) == "" {
			continue
		}

		for _, token := range ExtractCountryTokens(row.Country) {
			if token == "" {
				continue
			}

			country := token
			if alias, ok := countryAliases[country]; ok {
				country = alias
			}

			if row.Year == pendingSentinel {
				continue
			}
			year, err := strconv.Atoi(strings.TrimSpace(row.Year))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadYear, row.Year)
			}

			records = append(records, Record{
				Year:    year,
				Country: country,
			})
		}
	}
	return records, nil
}
