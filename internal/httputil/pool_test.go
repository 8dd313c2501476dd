// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPooledClientBounds(t *testing.T) {
	c := NewPooledClient()

	assert.Equal(t, 30*time.Second, c.Timeout)

	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok, "transport should be *http.Transport")
	assert.Equal(t, 10, tr.MaxConnsPerHost)
	assert.Equal(t, 10, tr.MaxIdleConns)
	assert.Equal(t, 5, tr.MaxIdleConnsPerHost)
}

func TestBodyExcerpt(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short body unchanged", "bad request", 300, "bad request"},
		{"long body bounded", strings.Repeat("x", 500), 300, strings.Repeat("x", 300)},
		{"whitespace trimmed", "  detail \n", 300, "detail"},
		{"empty body", "", 300, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BodyExcerpt(strings.NewReader(tt.in), tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}
