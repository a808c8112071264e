package wikipedia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"marriagemap/lib/htmlutil"
	"marriagemap/lib/restyutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("marriagemap.lib.scrapers.wikipedia")

const DefaultBaseUrl = "https://en.wikipedia.org"

const articlePath = "/wiki/Same-sex_marriage"

var (
	ErrBadStatus         = errors.New("article fetch returned a bad status")
	ErrNoTimelineTable   = errors.New("no wikitable found in article")
	ErrUnexpectedColumns = errors.New("timeline table does not have a year and a country column")
)

type ClientOptions struct {
	// BaseUrl defaults to the live encyclopedia when empty.
	BaseUrl string
}

type Client struct {
	http    *resty.Client
	baseUrl string
}

func NewClient(options ClientOptions) Client {
	baseUrl := options.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	restyutil.InstrumentClient(client, tracer)

	return Client{
		http:    client,
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
	}
}

// FetchArticle performs the single outbound GET of the pipeline. No
// retries, a failure here aborts the whole run.
func (c Client) FetchArticle(ctx context.Context) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(c.baseUrl + articlePath)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse article markup: %w", err)
	}
	return doc, nil
}

// TimelineRow is one row of the legalization timeline table, verbatim
// text before any cleaning.
type TimelineRow struct {
	Year    string
	Country string
}

// ExtractTimeline locates the first wikitable in the document and
// parses it into ordered rows. The table must carry exactly two
// columns, the first of which is the year column; anything else means
// the article layout changed and scraping should stop.
func ExtractTimeline(doc *goquery.Document) ([]TimelineRow, error) {
	table := doc.Find("table.wikitable").First()
	if table.Length() == 0 {
		return nil, ErrNoTimelineTable
	}

	var headers []string
	table.Find("tr").First().Find("th").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(htmlutil.CellText(cell)))
	})
	if len(headers) != 2 || !strings.Contains(headers[0], "year") {
		return nil, fmt.Errorf("%w: headers %v", ErrUnexpectedColumns, headers)
	}

	var rows []TimelineRow
	var rowErr error
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if rowErr != nil {
			return
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			// header row
			return
		}
		if cells.Length() != 2 {
			rowErr = fmt.Errorf("%w: row with %d cells", ErrUnexpectedColumns, cells.Length())
			return
		}
		rows = append(rows, TimelineRow{
			Year:    htmlutil.CellText(cells.Eq(0)),
			Country: htmlutil.CellText(cells.Eq(1)),
		})
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return rows, nil
}
