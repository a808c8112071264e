package choropleth

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/browser"
)

const chartTitle = "Same Sex Marriage Legalisation By Year"

// plasma-like continuous ramp, dark purple for early years through
// yellow for recent ones.
var yearScale = []string{"#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"}

// Entry is one colored region on the world map. Region carries the
// catalog name the map data is keyed by, Country the name as it
// appeared in the source.
type Entry struct {
	Code    string
	Country string
	Region  string
	Year    int
}

func newChart(entries []Entry) *charts.Map {
	minYear, maxYear := 0, 0
	data := make([]opts.MapData, 0, len(entries))
	for _, entry := range entries {
		if minYear == 0 || entry.Year < minYear {
			minYear = entry.Year
		}
		if entry.Year > maxYear {
			maxYear = entry.Year
		}
		data = append(data, opts.MapData{
			Name:  entry.Region,
			Value: entry.Year,
		})
	}

	chart := charts.NewMap()
	chart.RegisterMapType("world")
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: chartTitle,
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}: {c}",
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(minYear),
			Max:        float32(maxYear),
			InRange:    &opts.VisualMapInRange{Color: yearScale},
		}),
	)
	chart.AddSeries("year", data)
	return chart
}

// Render writes the map as a self-contained HTML page.
func Render(w io.Writer, entries []Entry) error {
	return newChart(entries).Render(w)
}

// Show renders the map to path (a temp file when empty) and opens it
// in the default browser when open is set.
func Show(path string, entries []Entry, open bool) error {
	var file *os.File
	var err error
	if path == "" {
		file, err = os.CreateTemp("", "marriagemap-*.html")
	} else {
		file, err = os.Create(path)
	}
	if err != nil {
		return fmt.Errorf("create chart output: %w", err)
	}

	err = Render(file, entries)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	slog.Info("rendered choropleth", "path", file.Name(), "regions", len(entries))

	if !open {
		return nil
	}
	err = browser.OpenFile(file.Name())
	if err != nil {
		return fmt.Errorf("open chart in browser: %w", err)
	}
	return nil
}
