// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HTTPConfig holds shared HTTP settings for upstream requests. The request
// timeout is fixed at 30 seconds in the gateway and is deliberately not
// configurable here.
type HTTPConfig struct {
	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "caselaw-mcp/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ServerConfig holds process-level settings for the adapter.
type ServerConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseV3 overrides the v3 REST endpoint root (clusters, opinions,
	// citation lookup). Empty means the public CourtListener host.
	BaseV3 string `json:"base_v3" yaml:"base_v3"`

	// BaseV4 overrides the v4 REST endpoint root (unified search).
	BaseV4 string `json:"base_v4" yaml:"base_v4"`

	// SecretsDir is the directory of plain-text secret files (default ".secrets/").
	SecretsDir string `json:"secrets_dir" yaml:"secrets_dir"`

	// Transcript is an optional path for the YAML session transcript.
	Transcript string `json:"transcript,omitempty" yaml:"transcript,omitempty"`
}
