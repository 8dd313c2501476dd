// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/caselaw-mcp/internal/tools"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search CourtListener for case law opinions",
	Long: `Search queries the CourtListener opinion index by keywords. With
--semantic the query is treated as a natural language description and
results are ranked by conceptual similarity instead of keyword match.

Prints the same text block the search_cases / semantic_search MCP tools
return.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()
		ops := tools.NewOps(client)

		searchArgs := tools.SearchArgs{
			Query: strings.Join(args, " "),
		}
		searchArgs.Court, _ = cmd.Flags().GetString("court")
		searchArgs.FiledAfter, _ = cmd.Flags().GetString("filed-after")
		searchArgs.FiledBefore, _ = cmd.Flags().GetString("filed-before")
		searchArgs.OrderBy, _ = cmd.Flags().GetString("order-by")
		searchArgs.Limit, _ = cmd.Flags().GetInt("limit")

		var text string
		if semantic, _ := cmd.Flags().GetBool("semantic"); semantic {
			text, _ = ops.SemanticSearch(cmd.Context(), searchArgs)
		} else {
			text, _ = ops.SearchCases(cmd.Context(), searchArgs)
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	searchCmd.Flags().Bool("semantic", false, "natural language search instead of keywords")
	searchCmd.Flags().String("court", "", "court filter code (e.g. scotus, ca9)")
	searchCmd.Flags().String("filed-after", "", "start date filter (YYYY-MM-DD)")
	searchCmd.Flags().String("filed-before", "", "end date filter (YYYY-MM-DD)")
	searchCmd.Flags().String("order-by", "", "sort order (default: score desc)")
	searchCmd.Flags().Int("limit", 10, "maximum results to return (1-20)")

	rootCmd.AddCommand(searchCmd)
}
