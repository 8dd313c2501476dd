// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report converts decoded CourtListener payloads into the stable
// text blocks returned by the tool surface. Formatting is the bulk of the
// adapter: numbered search blocks, per-citation lookup blocks, and opinion
// text extraction with markup stripping.
package report

import (
	"strings"

	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

// siteOrigin prefixes the relative URLs the API returns.
const siteOrigin = "https://www.courtlistener.com"

// AbsoluteURL turns an upstream relative path into a full link. An empty
// path yields just the origin, matching the upstream convention.
func AbsoluteURL(relative string) string {
	return siteOrigin + relative
}

// joinCitations renders a citation list as a comma-separated string.
// Already-normalized string citations pass through unchanged; structured
// volume/reporter/page entries are joined with single spaces. An empty or
// all-blank list yields the literal "None".
func joinCitations(cites types.CitationList) string {
	var parts []string
	for _, c := range cites {
		if s := c.String(); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

// orDefault substitutes fallback for an empty string.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
