// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.yaml.in/yaml/v3"
)

// TranscriptEntry records one tool invocation. Result text is summarized
// by size; full opinion bodies would bloat the transcript without helping
// session review.
type TranscriptEntry struct {
	Time        time.Time      `yaml:"time"`
	Tool        string         `yaml:"tool"`
	Args        map[string]any `yaml:"args,omitempty"`
	ResultBytes int            `yaml:"result_bytes"`
	IsError     bool           `yaml:"is_error"`
}

// Transcript appends tool invocations to a YAML file as the session runs.
// Entries are written as separate YAML documents so a crash mid-session
// loses at most the entry being written. Safe for concurrent use.
type Transcript struct {
	mu sync.Mutex
	f  *os.File
}

// OpenTranscript creates or truncates the transcript file at path.
func OpenTranscript(path string) (*Transcript, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript file: %w", err)
	}
	return &Transcript{f: f}, nil
}

// Record appends one invocation. Raw JSON arguments are re-decoded into a
// map so they render as structured YAML rather than an opaque string.
// Write failures are reported on stderr and otherwise ignored; recording
// must never fail a tool call.
func (t *Transcript) Record(tool string, args json.RawMessage, resultBytes int, isError bool) {
	entry := TranscriptEntry{
		Time:        time.Now().UTC(),
		Tool:        tool,
		ResultBytes: resultBytes,
		IsError:     isError,
	}
	if len(args) > 0 {
		var m map[string]any
		if err := json.Unmarshal(args, &m); err == nil {
			entry.Args = m
		}
	}

	data, err := yaml.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "transcript: marshaling entry: %v\n", err)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.f.Write(append([]byte("---\n"), data...)); err != nil {
		fmt.Fprintf(os.Stderr, "transcript: writing entry: %v\n", err)
	}
}

// Close flushes and closes the transcript file.
func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.f.Close()
}
