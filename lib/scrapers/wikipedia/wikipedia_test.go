package wikipedia

import (
	"context"
	"strings"
	"testing"

	"marriagemap/lib/testutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const timelineFixture = `<html><body>
<table class="wikitable">
<tbody>
<tr><th>Year</th><th>Country</th></tr>
<tr><td>2001</td><td>Netherlands[nationwide] (2001)<sup>[1]</sup></td></tr>
<tr><td>2005</td><td>Spain (2005) Canada (2005)</td></tr>
<tr><td>Pending</td><td>Example Country (2030)</td></tr>
</tbody>
</table>
</body></html>`

func parseFixture(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestExtractTimeline(t *testing.T) {
	doc := parseFixture(t, timelineFixture)

	rows, err := ExtractTimeline(doc)
	require.NoError(t, err)

	expected := []TimelineRow{
		{Year: "2001", Country: "Netherlands[nationwide] (2001)"},
		{Year: "2005", Country: "Spain (2005) Canada (2005)"},
		{Year: "Pending", Country: "Example Country (2030)"},
	}
	require.Equal(t, expected, rows)
}

func TestExtractTimelineNoTable(t *testing.T) {
	doc := parseFixture(t, "<html><body><p>no tables</p></body></html>")

	_, err := ExtractTimeline(doc)
	require.ErrorIs(t, err, ErrNoTimelineTable)
}

func TestExtractTimelineRejectsRenamedHeaders(t *testing.T) {
	doc := parseFixture(t, `<html><body>
<table class="wikitable">
<tr><th>Period</th><th>Country</th></tr>
<tr><td>2001</td><td>Netherlands</td></tr>
</table>
</body></html>`)

	_, err := ExtractTimeline(doc)
	require.ErrorIs(t, err, ErrUnexpectedColumns)
}

func TestExtractTimelineRejectsExtraColumns(t *testing.T) {
	doc := parseFixture(t, `<html><body>
<table class="wikitable">
<tr><th>Year</th><th>Country</th></tr>
<tr><td>2001</td><td>Netherlands</td><td>extra</td></tr>
</table>
</body></html>`)

	_, err := ExtractTimeline(doc)
	require.ErrorIs(t, err, ErrUnexpectedColumns)
}

func TestFetchArticle(t *testing.T) {
	server := testutil.ServeHTML(t, timelineFixture)
	client := NewClient(ClientOptions{BaseUrl: server.URL})

	doc, err := client.FetchArticle(context.Background())
	require.NoError(t, err)

	rows, err := ExtractTimeline(doc)
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestFetchArticleBadStatus(t *testing.T) {
	server := testutil.ServeStatus(t, 503)
	client := NewClient(ClientOptions{BaseUrl: server.URL})

	_, err := client.FetchArticle(context.Background())
	require.ErrorIs(t, err, ErrBadStatus)
}
