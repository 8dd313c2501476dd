// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/caselaw-mcp/internal/tools"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Retrieve the full text of a court opinion",
	Long: `Text fetches an opinion body with a metadata preamble. Provide either
--cluster-id (the case-level ID from search results, resolved to the
cluster's primary opinion) or --opinion-id.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		defer client.Close()
		ops := tools.NewOps(client)

		var caseArgs tools.CaseTextArgs
		caseArgs.ClusterID, _ = cmd.Flags().GetInt64("cluster-id")
		caseArgs.OpinionID, _ = cmd.Flags().GetInt64("opinion-id")
		caseArgs.MaxCharacters, _ = cmd.Flags().GetInt("max-characters")

		text, _ := ops.GetCaseText(cmd.Context(), caseArgs)
		fmt.Println(text)
		return nil
	},
}

func init() {
	textCmd.Flags().Int64("cluster-id", 0, "cluster ID of the case (from search results)")
	textCmd.Flags().Int64("opinion-id", 0, "specific opinion ID, skips cluster resolution")
	textCmd.Flags().Int("max-characters", 0, "cap on opinion text length (default 50000)")

	rootCmd.AddCommand(textCmd)
}
