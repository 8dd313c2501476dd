// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the caselaw-mcp server and CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/caselaw-mcp/internal/courtlistener"
	"github.com/pdiddy/caselaw-mcp/internal/secrets"
	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the resolved process configuration.
var cfg types.ServerConfig

// loadedSecrets holds API tokens loaded from the secrets directory at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the caselaw-mcp CLI.
var rootCmd = &cobra.Command{
	Use:   "caselaw-mcp",
	Short: "MCP server for the CourtListener case law database",
	Long: `caselaw-mcp exposes legal research tools over the Model Context Protocol:
keyword and semantic case search, citation resolution, full opinion text,
and citing-case discovery, all backed by the CourtListener REST API.

Run "caselaw-mcp serve" to serve tools over stdio. Each tool is also
available directly as a subcommand for scripting and debugging; the
subcommands print exactly the text an MCP client would receive.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = loadConfig()
		s, err := secrets.Load(cfg.SecretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./caselaw-mcp.yaml or ~/.config/caselaw-mcp/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("caselaw-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "caselaw-mcp"))
		}
	}

	viper.SetEnvPrefix("CASELAW_MCP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the process configuration from viper.
func loadConfig() types.ServerConfig {
	c := types.ServerConfig{
		BaseV3:     viper.GetString("base_v3"),
		BaseV4:     viper.GetString("base_v4"),
		SecretsDir: viper.GetString("secrets_dir"),
		Transcript: viper.GetString("transcript"),
	}
	c.UserAgent = viper.GetString("user_agent")
	if c.SecretsDir == "" {
		c.SecretsDir = ".secrets/"
	}
	return c
}

// newClient builds the gateway client from config and loaded secrets.
// Empty config values fall back to the client's own defaults.
func newClient() *courtlistener.Client {
	return courtlistener.New(secrets.Token(loadedSecrets),
		courtlistener.WithBaseURLs(cfg.BaseV3, cfg.BaseV4),
		courtlistener.WithUserAgent(cfg.UserAgent),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
