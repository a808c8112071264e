package choropleth

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testEntries = []Entry{
	{Code: "NLD", Country: "Netherlands", Region: "Netherlands", Year: 2001},
	{Code: "CAN", Country: "Canada", Region: "Canada", Year: 2005},
	{Code: "GBR", Country: "England and Wales", Region: "United Kingdom", Year: 2014},
}

func TestRender(t *testing.T) {
	var buffer bytes.Buffer
	err := Render(&buffer, testEntries)
	require.NoError(t, err)

	page := buffer.String()
	require.Contains(t, page, chartTitle)
	require.Contains(t, page, "Netherlands")
	require.Contains(t, page, "United Kingdom")
	require.Contains(t, page, "2014")
}

func TestShowWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	err := Show(path, testEntries, false)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Canada")
}
