package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// citation markers only: longer bracket tags like [nationwide]
// are data, not footnotes.
var footnoteRef = regexp.MustCompile(`\[(?:\d+|[a-z]|note \d+)\]`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) || c == '\n' || c == '\t' {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CellText returns the text of a table cell with footnote references
// removed, non-printable runes dropped and inner whitespace collapsed.
func CellText(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		buffer.WriteString(GetText(n))
	}

	text := removeNonPrintable(buffer.String())
	text = footnoteRef.ReplaceAllString(text, "")
	text = innerWhitespace.ReplaceAllString(text, " ")
	return strings.Trim(text, " \t\n")
}
