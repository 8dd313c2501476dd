// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
)

const serverName = "caselaw-mcp"

const serverInstructions = "Legal research server providing access to the CourtListener case law database. " +
	"Use search_cases for keyword searches, semantic_search for natural language queries, " +
	"lookup_citation for resolving citations, get_case_text for full opinion text, " +
	"and find_citing_cases to discover cases citing a given decision."

// Server wraps an MCP server with the five research tools registered.
type Server struct {
	ops        *Ops
	transcript *Transcript
	mcp        *mcp.Server
}

// NewServer builds the tool server on top of a gateway client. A nil
// transcript disables session recording.
func NewServer(cl *courtlistener.Client, version string, transcript *Transcript) *Server {
	s := &Server{
		ops:        NewOps(cl),
		transcript: transcript,
		mcp: mcp.NewServer(
			&mcp.Implementation{
				Name:    serverName,
				Version: version,
			},
			&mcp.ServerOptions{
				Instructions: serverInstructions,
			},
		),
	}
	s.registerTools()
	return s
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// result packages tool output, records it to the transcript when one is
// configured, and marks error text so clients can tell reports from
// failures.
func (s *Server) result(tool string, args json.RawMessage, text string, isError bool) *mcp.CallToolResult {
	if s.transcript != nil {
		s.transcript.Record(tool, args, len(text), isError)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: isError,
	}
}
