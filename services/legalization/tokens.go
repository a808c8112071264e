package legalization

import (
	"regexp"
	"strings"
)

// matches a year/count annotation attached to a country name, e.g.
// the " (2005)" in "Spain (2005)". non-greedy, so consecutive groups
// are each matched; an unbalanced "(" stays in the fragment.
var annotation = regexp.MustCompile(`\s\(.*?\)`)

const nationwideTag = "[nationwide]"

// ExtractCountryTokens splits a timeline cell like
// "Spain (2005) Canada (2005)" into its country names, dropping the
// parenthesized annotations and the [nationwide] tag. Pure function,
// tokens keep the order they appear in.
func ExtractCountryTokens(text string) []string {
	fragments := annotation.Split(text, -1)

	tokens := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		token := strings.ReplaceAll(fragment, nationwideTag, "")
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
