// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/caselaw-mcp/internal/tools"
)

var citingCmd = &cobra.Command{
	Use:   "citing <cluster-id>",
	Short: "Find cases that cite a given case",
	Long: `Citing searches for opinions citing the case identified by cluster ID.
Obtain the cluster ID from search results or from the citation command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clusterID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid cluster ID %q: %w", args[0], err)
		}

		client := newClient()
		defer client.Close()
		ops := tools.NewOps(client)

		citingArgs := tools.CitingArgs{ClusterID: clusterID}
		citingArgs.Court, _ = cmd.Flags().GetString("court")
		citingArgs.FiledAfter, _ = cmd.Flags().GetString("filed-after")
		citingArgs.FiledBefore, _ = cmd.Flags().GetString("filed-before")
		citingArgs.OrderBy, _ = cmd.Flags().GetString("order-by")
		citingArgs.Limit, _ = cmd.Flags().GetInt("limit")

		text, _ := ops.FindCitingCases(cmd.Context(), citingArgs)
		fmt.Println(text)
		return nil
	},
}

func init() {
	citingCmd.Flags().String("court", "", "court filter code (e.g. scotus, ca9)")
	citingCmd.Flags().String("filed-after", "", "start date filter (YYYY-MM-DD)")
	citingCmd.Flags().String("filed-before", "", "end date filter (YYYY-MM-DD)")
	citingCmd.Flags().String("order-by", "", "sort order (default: score desc)")
	citingCmd.Flags().Int("limit", 10, "maximum results to return (1-20)")

	rootCmd.AddCommand(citingCmd)
}
