// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key
// name and the file contents (trimmed) are the value.
//
// Supported key files: courtlistener-api-token. The COURTLISTENER_API_TOKEN
// environment variable takes precedence over the file.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenEnvVar is the environment variable holding the CourtListener API token.
const TokenEnvVar = "COURTLISTENER_API_TOKEN"

// tokenKey is the secret-file name for the CourtListener API token.
const tokenKey = "courtlistener-api-token"

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Token resolves the API token: the environment variable wins, then the
// loaded secret file. An empty result means every upstream call will fail
// with the configuration error; the process itself keeps running.
func Token(loaded map[string]string) string {
	if v := strings.TrimSpace(os.Getenv(TokenEnvVar)); v != "" {
		return v
	}
	return loaded[tokenKey]
}
