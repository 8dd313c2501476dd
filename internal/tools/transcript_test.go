// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestTranscriptRecordsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	tr, err := OpenTranscript(path)
	require.NoError(t, err)

	tr.Record("search_cases", json.RawMessage(`{"query": "miranda", "limit": 5}`), 120, false)
	tr.Record("get_case_text", nil, 42, true)
	require.NoError(t, tr.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	docs := strings.Split(string(data), "---\n")
	var entries []TranscriptEntry
	for _, doc := range docs {
		if strings.TrimSpace(doc) == "" {
			continue
		}
		var e TranscriptEntry
		require.NoError(t, yaml.Unmarshal([]byte(doc), &e))
		entries = append(entries, e)
	}
	require.Len(t, entries, 2)

	assert.Equal(t, "search_cases", entries[0].Tool)
	assert.Equal(t, "miranda", entries[0].Args["query"])
	assert.Equal(t, 120, entries[0].ResultBytes)
	assert.False(t, entries[0].IsError)
	assert.False(t, entries[0].Time.IsZero())

	assert.Equal(t, "get_case_text", entries[1].Tool)
	assert.Nil(t, entries[1].Args)
	assert.True(t, entries[1].IsError)
}
