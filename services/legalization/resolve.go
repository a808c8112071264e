package legalization

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"marriagemap/lib/countrycode"
)

// ResolvedRecord is a Record whose country resolved to an ISO 3166
// alpha-3 code.
type ResolvedRecord struct {
	Year    int
	Country string
	Code    string
}

// Resolve looks up every record's country against the code catalog.
// Records whose name the catalog does not know are filtered out and
// reported in the second return value, sorted and deduplicated;
// misses are expected (historical names, sub-national entities) and
// never fail the run. A catalog-internal failure does.
func Resolve(ctx context.Context, records []Record, resolver *countrycode.Resolver) ([]ResolvedRecord, []string, error) {
	ctx, span := tracer.Start(ctx, "Resolve")
	defer span.End()

	var resolved []ResolvedRecord
	var unmatched []string
	for _, record := range records {
		code, ok, err := resolver.Resolve(record.Country)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve %q: %w", record.Country, err)
		}
		if !ok {
			unmatched = append(unmatched, record.Country)
			continue
		}
		resolved = append(resolved, ResolvedRecord{
			Year:    record.Year,
			Country: record.Country,
			Code:    code,
		})
	}

	slices.Sort(unmatched)
	unmatched = slices.Compact(unmatched)

	if len(unmatched) > 0 && slog.Default().Enabled(ctx, slog.LevelDebug) {
		for _, name := range unmatched {
			slog.DebugContext(
				ctx, "unmatched country",
				"name", name,
				"closest", resolver.Suggest(name),
			)
		}
	}

	return resolved, unmatched, nil
}
