package legalization

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"marriagemap/lib/countrycode"
	"marriagemap/lib/scrapers/wikipedia"
	"marriagemap/lib/telemetry"
	"marriagemap/lib/testutil"

	"github.com/stretchr/testify/require"
)

const articleFixture = `<html><body>
<table class="wikitable">
<tbody>
<tr><th>Year</th><th>Country</th></tr>
<tr><td>2001</td><td>Netherlands[nationwide] (2001)</td></tr>
<tr><td>Pending</td><td>Example Country (2030)</td></tr>
</tbody>
</table>
</body></html>`

func TestRunEndToEnd(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:legalization")
	defer cleanup()

	server := testutil.ServeHTML(t, articleFixture)
	client := wikipedia.NewClient(wikipedia.ClientOptions{
		BaseUrl: server.URL,
	})

	outputPath := filepath.Join(t.TempDir(), "chart.html")
	resolved, err := Run(context.Background(), RunOptions{
		Client:      client,
		Resolver:    countrycode.NewResolver(),
		OutputPath:  outputPath,
		OpenBrowser: false,
	})
	require.NoError(t, err)

	require.Equal(t, []ResolvedRecord{
		{Year: 2001, Country: "Netherlands", Code: "NLD"},
	}, resolved)

	chart, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Contains(t, string(chart), "Netherlands")
}

func TestRunAbortsWithoutTable(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:legalization")
	defer cleanup()

	server := testutil.ServeHTML(t, "<html><body><p>nothing here</p></body></html>")
	client := wikipedia.NewClient(wikipedia.ClientOptions{
		BaseUrl: server.URL,
	})

	_, err := Run(context.Background(), RunOptions{
		Client:      client,
		Resolver:    countrycode.NewResolver(),
		OutputPath:  filepath.Join(t.TempDir(), "chart.html"),
		OpenBrowser: false,
	})
	require.ErrorIs(t, err, wikipedia.ErrNoTimelineTable)
}
