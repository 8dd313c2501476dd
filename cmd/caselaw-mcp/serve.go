// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/caselaw-mcp/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the research tools over MCP on stdio",
	Long: `Serve runs the MCP server on stdin/stdout until the client disconnects.
All diagnostics go to stderr; stdout carries only protocol traffic.

With --transcript, every tool invocation is appended to a YAML file for
later session review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("transcript")
		if path == "" {
			path = cfg.Transcript
		}

		var transcript *tools.Transcript
		if path != "" {
			t, err := tools.OpenTranscript(path)
			if err != nil {
				return err
			}
			defer t.Close()
			transcript = t
		}

		client := newClient()
		defer client.Close()

		srv := tools.NewServer(client, version, transcript)
		fmt.Fprintln(os.Stderr, "caselaw-mcp serving on stdio")
		return srv.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("transcript", "", "append tool invocations to a YAML transcript file")

	rootCmd.AddCommand(serveCmd)
}
