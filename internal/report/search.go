// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

// markTagRe matches the <mark> highlight tags the search endpoint embeds
// in snippets.
var markTagRe = regexp.MustCompile(`</?mark>`)

// StripHighlights removes search-highlight markup from a snippet.
func StripHighlights(s string) string {
	return markTagRe.ReplaceAllString(s, "")
}

// FormatSearchResults renders a search response as numbered result blocks
// under the given header. An empty result set yields a single "No results
// found." line; otherwise the header carries the upstream total, which can
// exceed the number of blocks shown.
func FormatSearchResults(resp types.SearchResponse, header string) string {
	if len(resp.Results) == 0 {
		return "No results found. " + header
	}

	lines := []string{fmt.Sprintf("%s (%d total results)\n", header, resp.Count)}
	for i, hit := range resp.Results {
		block := fmt.Sprintf(
			"%d. %s (%s, %s)\n"+
				"   Citations: %s\n"+
				"   Cited by: %d cases\n"+
				"   Snippet: %s\n"+
				"   Cluster ID: %s\n"+
				"   URL: %s\n",
			i+1,
			orDefault(hit.CaseName, "Unknown"),
			orDefault(hit.Court, "?"),
			orDefault(hit.DateFiled, "?"),
			joinCitations(hit.Citations),
			hit.CitedBy(),
			StripHighlights(orDefault(hit.Snippet, "N/A")),
			orDefault(hit.ClusterID.String(), "N/A"),
			AbsoluteURL(hit.AbsoluteURL),
		)
		lines = append(lines, block)
	}
	return strings.Join(lines, "\n")
}
