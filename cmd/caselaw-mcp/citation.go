// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/caselaw-mcp/internal/tools"
)

var citationCmd = &cobra.Command{
	Use:   "citation <citation>...",
	Short: "Resolve a legal citation to its case",
	Long: `Citation resolves one or more legal citations (e.g. "410 U.S. 113") to
the matching cases. Surrounding prose is allowed; every citation found in
the text is extracted and resolved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()
		ops := tools.NewOps(client)

		text, _ := ops.LookupCitation(cmd.Context(), strings.Join(args, " "))
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citationCmd)
}
