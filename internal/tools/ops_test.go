// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
)

func newTestOps(t *testing.T, handler http.Handler) *Ops {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	cl := courtlistener.New("tok",
		courtlistener.WithBaseURLs(ts.URL, ts.URL),
		courtlistener.WithHTTPClient(ts.Client()))
	return NewOps(cl)
}

func TestGetCaseTextResolvesClusterToOpinion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/clusters/12345/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"id": 12345,
			"case_name": "Miranda v. Arizona",
			"date_filed": "1966-06-13",
			"absolute_url": "/opinion/12345/miranda/",
			"sub_opinions": ["https://www.courtlistener.com/api/rest/v3/opinions/987/"]
		}`))
	})
	mux.HandleFunc("/opinions/987/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"id": 987,
			"plain_text": "We granted certiorari.",
			"author_str": "Warren",
			"type": "010combined"
		}`))
	})
	ops := newTestOps(t, mux)

	text, ok := ops.GetCaseText(context.Background(), CaseTextArgs{ClusterID: 12345})
	require.True(t, ok, text)

	want := "Case: Miranda v. Arizona\n" +
		"Date: 1966-06-13\n" +
		"Author: Warren\n" +
		"Opinion Type: 010combined\n" +
		"Text Source: plain_text\n" +
		"Opinion ID: 987\n" +
		"\n" +
		"--- OPINION TEXT ---\n" +
		"We granted certiorari."
	assert.Equal(t, want, text)
}

func TestGetCaseTextDirectOpinionSkipsCluster(t *testing.T) {
	var clusterCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/clusters/", func(w http.ResponseWriter, _ *http.Request) {
		clusterCalls++
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/opinions/55/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id": 55, "plain_text": "body"}`))
	})
	ops := newTestOps(t, mux)

	text, ok := ops.GetCaseText(context.Background(), CaseTextArgs{OpinionID: 55})
	require.True(t, ok, text)
	assert.Equal(t, 0, clusterCalls)

	// No cluster fetch means no case name or date lines.
	assert.NotContains(t, text, "Case:")
	assert.NotContains(t, text, "Date:")
	assert.Contains(t, text, "Text Source: plain_text")
	assert.Contains(t, text, "Opinion ID: 55")
}

func TestGetCaseTextTruncation(t *testing.T) {
	long := strings.Repeat("x", 2000)
	mux := http.NewServeMux()
	mux.HandleFunc("/clusters/7/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"id": 7,
			"case_name": "Long v. Winded",
			"absolute_url": "/opinion/7/long/",
			"sub_opinions": ["/opinions/70/"]
		}`))
	})
	mux.HandleFunc("/opinions/70/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id": 70, "plain_text": "` + long + `"}`))
	})
	ops := newTestOps(t, mux)

	text, ok := ops.GetCaseText(context.Background(), CaseTextArgs{ClusterID: 7, MaxCharacters: 1500})
	require.True(t, ok, text)
	assert.Contains(t, text,
		"\n[Truncated at 1,500 characters. Full opinion: https://www.courtlistener.com/opinion/7/long/]")
	assert.Contains(t, text, strings.Repeat("x", 1500))
	assert.NotContains(t, text, strings.Repeat("x", 1501))
}

func TestGetCaseTextErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		args    CaseTextArgs
		want    string
	}{
		{
			name:    "neither id given",
			handler: func(http.ResponseWriter, *http.Request) {},
			args:    CaseTextArgs{},
			want:    "Error: Provide either cluster_id or opinion_id.",
		},
		{
			name: "cluster without opinions",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"id": 9, "sub_opinions": []}`))
			},
			args: CaseTextArgs{ClusterID: 9},
			want: "Error: No opinions found in cluster 9.",
		},
		{
			name: "unparseable sub-opinion URL",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"id": 9, "sub_opinions": ["https://example.com/not-an-opinion"]}`))
			},
			args: CaseTextArgs{ClusterID: 9},
			want: "Error: Could not parse opinion ID from cluster data.",
		},
		{
			name: "opinion with no text",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"id": 66}`))
			},
			args: CaseTextArgs{OpinionID: 66},
			want: "Error: No text content available for opinion 66.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := newTestOps(t, tt.handler)
			text, ok := ops.GetCaseText(context.Background(), tt.args)
			assert.False(t, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestFindCitingCasesQueryShape(t *testing.T) {
	var captured *http.Request
	ops := newTestOps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Write([]byte(`{"count":0,"results":[]}`))
	}))

	text, ok := ops.FindCitingCases(context.Background(), CitingArgs{ClusterID: 106447, Limit: 500})
	require.True(t, ok, text)

	q := captured.URL.Query()
	assert.Equal(t, "cites:(106447)", q.Get("q"))
	assert.Equal(t, "20", q.Get("limit"))
	assert.Equal(t, "No results found. Cases citing cluster 106447", text)
}

func TestSemanticSearchPinsRelevanceOrder(t *testing.T) {
	var captured *http.Request
	ops := newTestOps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Write([]byte(`{"count":0,"results":[]}`))
	}))

	text, ok := ops.SemanticSearch(context.Background(), SearchArgs{
		Query:   "warrantless car search",
		OrderBy: "dateFiled asc",
	})
	require.True(t, ok, text)
	assert.Equal(t, "score desc", captured.URL.Query().Get("order_by"))
	assert.Equal(t, `No results found. Semantic search results for "warrantless car search"`, text)
}

func TestLookupCitationNotFoundEntry(t *testing.T) {
	ops := newTestOps(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"citation": "1 Fake 999", "status": 404}]`))
	}))

	text, ok := ops.LookupCitation(context.Background(), "1 Fake 999")
	require.True(t, ok)
	assert.Contains(t, text, "Citation: 1 Fake 999")
	assert.Contains(t, text, "Status: 404")
	assert.Contains(t, text, "No matching case found for this citation.")
}

func TestSearchCasesSurfacesUpstreamError(t *testing.T) {
	ops := newTestOps(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	text, ok := ops.SearchCases(context.Background(), SearchArgs{Query: "q"})
	assert.False(t, ok)
	assert.Equal(t, "Error: Invalid API token. Check COURTLISTENER_API_TOKEN.", text)
}

func TestThousands(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{50000, "50,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := thousands(tt.n); got != tt.want {
			t.Errorf("thousands(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
