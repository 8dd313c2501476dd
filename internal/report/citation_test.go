// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

func TestFormatCitationLookupEmpty(t *testing.T) {
	got := FormatCitationLookup(nil, "410 U.S. 113")
	want := "No cases found for citation: 410 U.S. 113"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatCitationLookupResolved(t *testing.T) {
	entries := []types.LookupEntry{
		{
			Citation:            "410 U.S. 113",
			NormalizedCitations: []string{"410 U.S. 113"},
			Status:              200,
			Clusters: types.ClusterList{
				{
					ID:          json.Number("108713"),
					CaseName:    "Roe v. Wade",
					DateFiled:   "1973-01-22",
					Citations:   types.CitationList{{Raw: "410 U.S. 113"}},
					AbsoluteURL: "/opinion/108713/roe-v-wade/",
				},
			},
		},
	}

	got := FormatCitationLookup(entries, "410 U.S. 113")
	want := "Citation: 410 U.S. 113\n" +
		"Normalized: 410 U.S. 113\n" +
		"Status: 200\n" +
		"\n" +
		"Case: Roe v. Wade\n" +
		"Date Filed: 1973-01-22\n" +
		"Citations: 410 U.S. 113\n" +
		"Cluster ID: 108713\n" +
		"URL: https://www.courtlistener.com/opinion/108713/roe-v-wade/"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatCitationLookupNotFound(t *testing.T) {
	entries := []types.LookupEntry{
		{Citation: "1 Fake 999", Status: 404},
	}
	got := FormatCitationLookup(entries, "1 Fake 999")
	if !strings.Contains(got, "No matching case found for this citation.") {
		t.Errorf("missing no-match line:\n%s", got)
	}
	if strings.Contains(got, "Normalized:") {
		t.Errorf("normalized line should be omitted when empty:\n%s", got)
	}
	if got != strings.TrimSpace(got) {
		t.Errorf("output has surrounding whitespace: %q", got)
	}
}

func TestFormatCitationLookupMultipleEntries(t *testing.T) {
	entries := []types.LookupEntry{
		{Citation: "A", Status: 404},
		{Citation: "B", Status: 404},
	}
	got := FormatCitationLookup(entries, "A; B")
	if !strings.Contains(got, "Citation: A") || !strings.Contains(got, "Citation: B") {
		t.Fatalf("missing entries:\n%s", got)
	}
	if !strings.Contains(got, "No matching case found for this citation.\n\nCitation: B") {
		t.Errorf("entries should be separated by a blank line:\n%s", got)
	}
}
