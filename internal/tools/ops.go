// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools exposes legal research operations over the Model Context
// Protocol. Each tool resolves to a plain-text report; upstream failures
// come back as the error text itself rather than a protocol fault, so the
// caller always receives something readable.
package tools

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
	"github.com/pdiddy/caselaw-mcp/internal/report"
)

// defaultMaxCharacters caps opinion text when the caller does not set a
// limit of its own.
const defaultMaxCharacters = 50000

// defaultSearchLimit is the result count used when a tool call omits the
// limit argument. An explicit limit still goes through the gateway's
// [1, 20] clamp.
const defaultSearchLimit = 10

// Ops implements the tool operations against the CourtListener gateway.
// The MCP handlers and the CLI commands share this one implementation.
type Ops struct {
	cl *courtlistener.Client
}

// NewOps wraps a gateway client.
func NewOps(cl *courtlistener.Client) *Ops {
	return &Ops{cl: cl}
}

// SearchArgs are the arguments shared by the keyword and semantic search
// tools.
type SearchArgs struct {
	Query       string `json:"query"`
	Court       string `json:"court,omitempty"`
	FiledAfter  string `json:"filed_after,omitempty"`
	FiledBefore string `json:"filed_before,omitempty"`
	OrderBy     string `json:"order_by,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

func (a SearchArgs) params() courtlistener.SearchParams {
	return courtlistener.SearchParams{
		Query:       a.Query,
		Court:       a.Court,
		FiledAfter:  a.FiledAfter,
		FiledBefore: a.FiledBefore,
		OrderBy:     a.OrderBy,
		Limit:       a.Limit,
	}
}

// SearchCases runs a keyword search over opinions. The ok result is false
// when the text is an error message rather than a report.
func (o *Ops) SearchCases(ctx context.Context, a SearchArgs) (string, bool) {
	resp, err := o.cl.Search(ctx, a.params())
	if err != nil {
		return err.Error(), false
	}
	header := fmt.Sprintf("Search results for \"%s\"", a.Query)
	return report.FormatSearchResults(resp, header), true
}

// SemanticSearch runs a natural-language search. It is the same upstream
// endpoint as SearchCases with the sort pinned to relevance.
func (o *Ops) SemanticSearch(ctx context.Context, a SearchArgs) (string, bool) {
	a.OrderBy = "score desc"
	resp, err := o.cl.Search(ctx, a.params())
	if err != nil {
		return err.Error(), false
	}
	header := fmt.Sprintf("Semantic search results for \"%s\"", a.Query)
	return report.FormatSearchResults(resp, header), true
}

// LookupCitation resolves a citation string, or any text containing
// citations, to the matching cases.
func (o *Ops) LookupCitation(ctx context.Context, citation string) (string, bool) {
	entries, err := o.cl.LookupCitation(ctx, citation)
	if err != nil {
		return err.Error(), false
	}
	return report.FormatCitationLookup(entries, citation), true
}

// CaseTextArgs select an opinion either directly by opinion id or through
// the case cluster that contains it.
type CaseTextArgs struct {
	ClusterID     int64 `json:"cluster_id,omitempty"`
	OpinionID     int64 `json:"opinion_id,omitempty"`
	MaxCharacters int   `json:"max_characters,omitempty"`
}

// opinionIDRe extracts the opinion id from a sub_opinions URL like
// ".../opinions/12345/".
var opinionIDRe = regexp.MustCompile(`/opinions/(\d+)/`)

func parseOpinionID(url string) (int64, bool) {
	m := opinionIDRe.FindStringSubmatch(url)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// GetCaseText fetches an opinion's full text with a metadata preamble.
// When only a cluster id is given, the cluster's first sub-opinion is
// fetched; case name and filing date are then known and included.
func (o *Ops) GetCaseText(ctx context.Context, a CaseTextArgs) (string, bool) {
	if a.ClusterID == 0 && a.OpinionID == 0 {
		return "Error: Provide either cluster_id or opinion_id.", false
	}
	if a.MaxCharacters == 0 {
		a.MaxCharacters = defaultMaxCharacters
	}

	caseName := "Unknown"
	dateFiled := "?"
	caseURL := ""
	opinionID := a.OpinionID

	if opinionID == 0 {
		cluster, err := o.cl.Cluster(ctx, a.ClusterID)
		if err != nil {
			return err.Error(), false
		}
		if cluster.CaseName != "" {
			caseName = cluster.CaseName
		}
		if cluster.DateFiled != "" {
			dateFiled = cluster.DateFiled
		}
		caseURL = cluster.AbsoluteURL

		if len(cluster.SubOpinions) == 0 {
			return fmt.Sprintf("Error: No opinions found in cluster %d.", a.ClusterID), false
		}
		id, ok := parseOpinionID(cluster.SubOpinions[0])
		if !ok {
			return "Error: Could not parse opinion ID from cluster data.", false
		}
		opinionID = id
	}

	op, err := o.cl.Opinion(ctx, opinionID)
	if err != nil {
		return err.Error(), false
	}

	extracted, ok := report.ExtractOpinionText(op)
	if !ok {
		return fmt.Sprintf("Error: No text content available for opinion %d.", opinionID), false
	}
	text, truncated := report.Truncate(extracted.Text, a.MaxCharacters)

	var lines []string
	if caseName != "Unknown" {
		lines = append(lines, "Case: "+caseName)
	}
	if dateFiled != "?" {
		lines = append(lines, "Date: "+dateFiled)
	}
	if op.AuthorStr != "" {
		lines = append(lines, "Author: "+op.AuthorStr)
	}
	if op.Type != "" {
		lines = append(lines, "Opinion Type: "+op.Type)
	}
	lines = append(lines, "Text Source: "+extracted.Source)
	lines = append(lines, fmt.Sprintf("Opinion ID: %d", opinionID))
	lines = append(lines, "", "--- OPINION TEXT ---", text)

	if truncated {
		fullURL := ""
		if caseURL != "" {
			fullURL = report.AbsoluteURL(caseURL)
		}
		lines = append(lines, fmt.Sprintf(
			"\n[Truncated at %s characters. Full opinion: %s]",
			thousands(a.MaxCharacters), fullURL))
	}
	return strings.Join(lines, "\n"), true
}

// CitingArgs identify the cited case and filter the citing results.
type CitingArgs struct {
	ClusterID   int64  `json:"cluster_id"`
	Court       string `json:"court,omitempty"`
	FiledAfter  string `json:"filed_after,omitempty"`
	FiledBefore string `json:"filed_before,omitempty"`
	OrderBy     string `json:"order_by,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

// FindCitingCases searches for opinions citing the given cluster. It is a
// search with a cites:(id) query, so all search filters apply.
func (o *Ops) FindCitingCases(ctx context.Context, a CitingArgs) (string, bool) {
	resp, err := o.cl.Search(ctx, courtlistener.SearchParams{
		Query:       fmt.Sprintf("cites:(%d)", a.ClusterID),
		Court:       a.Court,
		FiledAfter:  a.FiledAfter,
		FiledBefore: a.FiledBefore,
		OrderBy:     a.OrderBy,
		Limit:       a.Limit,
	})
	if err != nil {
		return err.Error(), false
	}
	header := fmt.Sprintf("Cases citing cluster %d", a.ClusterID)
	return report.FormatSearchResults(resp, header), true
}

// thousands renders n with comma grouping, e.g. 50000 -> "50,000".
func thousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
