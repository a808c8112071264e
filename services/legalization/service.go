package legalization

import (
	"context"
	"fmt"
	"log/slog"

	"marriagemap/lib/choropleth"
	"marriagemap/lib/countrycode"
	"marriagemap/lib/scrapers/wikipedia"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("marriagemap.services.legalization")

type RunOptions struct {
	Client   wikipedia.Client
	Resolver *countrycode.Resolver
	// OutputPath is where the chart HTML goes; a temp file when empty.
	OutputPath string
	// OpenBrowser opens the rendered chart in the default browser.
	OpenBrowser bool
}

// Run executes the whole pipeline: fetch the article, extract the
// timeline table, clean and expand the rows, resolve country codes
// and render the choropleth. Any error aborts the run with nothing
// rendered. Returns the resolved dataset for display.
func Run(ctx context.Context, options RunOptions) ([]ResolvedRecord, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	doc, err := options.Client.FetchArticle(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := wikipedia.ExtractTimeline(doc)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "loaded legalization timeline", "rows", len(rows))

	records, err := Clean(rows)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "cleaned legalization records", "records", len(records))

	resolved, unmatched, err := Resolve(ctx, records, options.Resolver)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(
		ctx, "resolved country codes",
		"records", len(resolved),
		"unmatched", len(unmatched),
	)

	entries := make([]choropleth.Entry, 0, len(resolved))
	for _, record := range resolved {
		region, err := options.Resolver.RegionName(record.Code)
		if err != nil {
			return nil, fmt.Errorf("region for %q: %w", record.Code, err)
		}
		entries = append(entries, choropleth.Entry{
			Code:    record.Code,
			Country: record.Country,
			Region:  region,
			Year:    record.Year,
		})
	}

	err = choropleth.Show(options.OutputPath, entries, options.OpenBrowser)
	if err != nil {
		return nil, err
	}

	return resolved, nil
}
