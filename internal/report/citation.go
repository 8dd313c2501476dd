// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

// FormatCitationLookup renders citation-lookup entries as per-citation
// blocks. Each block reports the citation as parsed, its normalized forms,
// and the resolution status; resolved entries list every matched case, and
// a 404 entry gets an explicit no-match line. Blocks are separated by a
// blank line and the result carries no trailing whitespace.
func FormatCitationLookup(entries []types.LookupEntry, citation string) string {
	if len(entries) == 0 {
		return "No cases found for citation: " + citation
	}

	var lines []string
	for _, e := range entries {
		lines = append(lines, "Citation: "+orDefault(e.Citation, "?"))
		if len(e.NormalizedCitations) > 0 {
			lines = append(lines, "Normalized: "+strings.Join(e.NormalizedCitations, ", "))
		}
		lines = append(lines, fmt.Sprintf("Status: %d", e.Status))

		switch {
		case e.Status == 200 && len(e.Clusters) > 0:
			for _, cl := range e.Clusters {
				lines = append(lines, "\nCase: "+orDefault(cl.CaseName, "Unknown"))
				lines = append(lines, "Date Filed: "+orDefault(cl.DateFiled, "?"))
				lines = append(lines, "Citations: "+joinCitations(cl.Citations))
				lines = append(lines, "Cluster ID: "+orDefault(cl.ID.String(), "?"))
				if cl.AbsoluteURL != "" {
					lines = append(lines, "URL: "+AbsoluteURL(cl.AbsoluteURL))
				}
			}
		case e.Status == 404:
			lines = append(lines, "No matching case found for this citation.")
		}
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
