package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"marriagemap/lib/configutil"
	"marriagemap/lib/countrycode"
	"marriagemap/lib/scrapers/wikipedia"
	"marriagemap/lib/serviceutil"
	"marriagemap/lib/telemetry"
	"marriagemap/services/legalization"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	// SourceUrl overrides the encyclopedia base url, mainly for
	// scraping through a mirror.
	SourceUrl string `json:"source_url"`
	Output    string `json:"output"`
}

var (
	verbose   *bool
	output    *string
	noOpen    *bool
	showTable *bool
)

func init() {
	verbose = rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging.")
	output = rootCmd.Flags().String("out", "", "Path to write the chart HTML to. Defaults to a temp file.")
	noOpen = rootCmd.Flags().Bool("no-open", false, "Do not open the rendered chart in a browser.")
	showTable = rootCmd.Flags().Bool("table", false, "Print the resolved dataset as a table.")
}

var rootCmd = &cobra.Command{
	Use:   "marriagemap",
	Short: "marriagemap scrapes the marriage equality timeline and renders a world choropleth.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		telemetry.InitSlog(*verbose)

		tel, err := telemetry.SetupFromEnv(ctx, "marriagemap")
		if err == nil {
			defer tel.Shutdown(context.Background())
			telemetry.InstrumentPerfStats(ctx)
		} else if !os.IsNotExist(err) {
			serviceutil.Fatal("failed to setup telemetry", err)
		}

		cfg, err := configutil.ReadConfig[Config]("marriagemap.json5")
		if err != nil && !os.IsNotExist(err) {
			serviceutil.Fatal("failed to read config", err)
		}

		outputPath := *output
		if outputPath == "" {
			outputPath = cfg.Output
		}

		client := wikipedia.NewClient(wikipedia.ClientOptions{
			BaseUrl: cfg.SourceUrl,
		})

		resolved, err := legalization.Run(ctx, legalization.RunOptions{
			Client:      client,
			Resolver:    countrycode.NewResolver(),
			OutputPath:  outputPath,
			OpenBrowser: !*noOpen,
		})
		if err != nil {
			serviceutil.Fatal("pipeline failed", err)
		}

		if *showTable {
			printDataset(resolved)
		}

		slog.Info("done", "records", len(resolved))
	},
}

func printDataset(records []legalization.ResolvedRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Year", "Country", "ISO"})
	for _, record := range records {
		t.AppendRow(table.Row{record.Year, record.Country, record.Code})
	}
	t.Render()
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
