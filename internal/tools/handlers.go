// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mustSchema parses a tool input schema literal. The literals are fixed at
// compile time, so a parse failure is a programming error.
func mustSchema(raw string) *jsonschema.Schema {
	var s jsonschema.Schema
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		panic(fmt.Sprintf("invalid tool schema: %v", err))
	}
	return &s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name: "search_cases",
		Description: "Search CourtListener for case law opinions by keywords. " +
			"Use quotes around phrases for exact matching.",
		InputSchema: mustSchema(`{
			"type": "object",
			"properties": {
				"query": {
					"type": "string",
					"description": "Keywords to search for (e.g. \"fourth amendment search seizure\")."
				},
				"court": {
					"type": "string",
					"description": "Court filter code (e.g. \"scotus\", \"ca9\"). Multiple courts separated by spaces."
				},
				"filed_after": {
					"type": "string",
					"description": "Start date filter in YYYY-MM-DD format."
				},
				"filed_before": {
					"type": "string",
					"description": "End date filter in YYYY-MM-DD format."
				},
				"order_by": {
					"type": "string",
					"description": "Sort order: \"score desc\" (relevance), \"dateFiled desc\" (newest), \"dateFiled asc\" (oldest), \"citeCount desc\" (most cited)."
				},
				"limit": {
					"type": "integer",
					"description": "Max results to return (1-20, default 10)."
				}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchCases)

	s.mcp.AddTool(&mcp.Tool{
		Name: "semantic_search",
		Description: "Search for case law using natural language / semantic similarity. " +
			"Unlike keyword search, this finds conceptually similar cases even when different " +
			"terminology is used. Put specific required terms in quotation marks to force " +
			"exact keyword matching within semantic results.",
		InputSchema: mustSchema(`{
			"type": "object",
			"properties": {
				"query": {
					"type": "string",
					"description": "Natural language description of the legal concept (e.g. \"when can police search a car without a warrant\")."
				},
				"court": {
					"type": "string",
					"description": "Court filter code (e.g. \"scotus\", \"ca9\")."
				},
				"filed_after": {
					"type": "string",
					"description": "Start date filter in YYYY-MM-DD format."
				},
				"filed_before": {
					"type": "string",
					"description": "End date filter in YYYY-MM-DD format."
				},
				"limit": {
					"type": "integer",
					"description": "Max results to return (1-20, default 10)."
				}
			},
			"required": ["query"]
		}`),
	}, s.handleSemanticSearch)

	s.mcp.AddTool(&mcp.Tool{
		Name: "lookup_citation",
		Description: "Look up a legal citation and resolve it to the corresponding case. " +
			"The citation may include surrounding text; all citations found are extracted and resolved.",
		InputSchema: mustSchema(`{
			"type": "object",
			"properties": {
				"citation": {
					"type": "string",
					"description": "A legal citation string (e.g. \"410 U.S. 113\", \"576 US 644\")."
				}
			},
			"required": ["citation"]
		}`),
	}, s.handleLookupCitation)

	s.mcp.AddTool(&mcp.Tool{
		Name: "get_case_text",
		Description: "Retrieve the full text of a court opinion. Provide either a cluster_id " +
			"(case-level ID from search results) or a specific opinion_id. If cluster_id is " +
			"provided, fetches the primary opinion in the cluster.",
		InputSchema: mustSchema(`{
			"type": "object",
			"properties": {
				"cluster_id": {
					"type": "integer",
					"description": "The cluster ID of the case (from search results)."
				},
				"opinion_id": {
					"type": "integer",
					"description": "The specific opinion ID (if known)."
				},
				"max_characters": {
					"type": "integer",
					"description": "Maximum characters of opinion text to return (default 50000)."
				}
			}
		}`),
	}, s.handleGetCaseText)

	s.mcp.AddTool(&mcp.Tool{
		Name: "find_citing_cases",
		Description: "Find cases that cite a given case. Obtain the cluster ID from search " +
			"results or lookup_citation.",
		InputSchema: mustSchema(`{
			"type": "object",
			"properties": {
				"cluster_id": {
					"type": "integer",
					"description": "Cluster ID of the case to find citations for."
				},
				"court": {
					"type": "string",
					"description": "Court filter code (e.g. \"scotus\", \"ca9\")."
				},
				"filed_after": {
					"type": "string",
					"description": "Start date filter in YYYY-MM-DD format."
				},
				"filed_before": {
					"type": "string",
					"description": "End date filter in YYYY-MM-DD format."
				},
				"order_by": {
					"type": "string",
					"description": "Sort order (default \"score desc\")."
				},
				"limit": {
					"type": "integer",
					"description": "Max results to return (1-20, default 10)."
				}
			},
			"required": ["cluster_id"]
		}`),
	}, s.handleFindCitingCases)
}

func (s *Server) handleSearchCases(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := SearchArgs{Limit: defaultSearchLimit}
	if err := decodeArgs(req, &a); err != nil {
		return s.result("search_cases", req.Params.Arguments, err.Error(), true), nil
	}
	if a.Query == "" {
		return s.result("search_cases", req.Params.Arguments, "Error: query is required.", true), nil
	}
	text, ok := s.ops.SearchCases(ctx, a)
	return s.result("search_cases", req.Params.Arguments, text, !ok), nil
}

func (s *Server) handleSemanticSearch(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := SearchArgs{Limit: defaultSearchLimit}
	if err := decodeArgs(req, &a); err != nil {
		return s.result("semantic_search", req.Params.Arguments, err.Error(), true), nil
	}
	if a.Query == "" {
		return s.result("semantic_search", req.Params.Arguments, "Error: query is required.", true), nil
	}
	text, ok := s.ops.SemanticSearch(ctx, a)
	return s.result("semantic_search", req.Params.Arguments, text, !ok), nil
}

func (s *Server) handleLookupCitation(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a struct {
		Citation string `json:"citation"`
	}
	if err := decodeArgs(req, &a); err != nil {
		return s.result("lookup_citation", req.Params.Arguments, err.Error(), true), nil
	}
	if a.Citation == "" {
		return s.result("lookup_citation", req.Params.Arguments, "Error: citation is required.", true), nil
	}
	text, ok := s.ops.LookupCitation(ctx, a.Citation)
	return s.result("lookup_citation", req.Params.Arguments, text, !ok), nil
}

func (s *Server) handleGetCaseText(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a CaseTextArgs
	if err := decodeArgs(req, &a); err != nil {
		return s.result("get_case_text", req.Params.Arguments, err.Error(), true), nil
	}
	text, ok := s.ops.GetCaseText(ctx, a)
	return s.result("get_case_text", req.Params.Arguments, text, !ok), nil
}

func (s *Server) handleFindCitingCases(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := CitingArgs{Limit: defaultSearchLimit}
	if err := decodeArgs(req, &a); err != nil {
		return s.result("find_citing_cases", req.Params.Arguments, err.Error(), true), nil
	}
	if a.ClusterID == 0 {
		return s.result("find_citing_cases", req.Params.Arguments, "Error: cluster_id is required.", true), nil
	}
	text, ok := s.ops.FindCitingCases(ctx, a)
	return s.result("find_citing_cases", req.Params.Arguments, text, !ok), nil
}

// decodeArgs unmarshals the raw JSON arguments into a typed struct. Absent
// arguments decode to the struct's zero value.
func decodeArgs(req *mcp.CallToolRequest, v any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params.Arguments, v); err != nil {
		return fmt.Errorf("Error: invalid arguments: %w", err)
	}
	return nil
}
