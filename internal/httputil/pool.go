// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the upstream gateway.
package httputil

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// RequestTimeout is the fixed per-request deadline. It is not configurable
// at the tool-invocation level.
const RequestTimeout = 30 * time.Second

// Connection pool bounds for the single process-lifetime client.
const (
	maxConns     = 10
	maxIdleConns = 5
)

// NewPooledClient returns the shared HTTP client used for every upstream
// call. The pool is bounded to 10 connections (5 idle) and the client is
// safe for concurrent use; callers should build it once at startup and
// call CloseIdleConnections at shutdown.
func NewPooledClient() *http.Client {
	return &http.Client{
		Timeout: RequestTimeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxConnsPerHost:     maxConns,
			MaxIdleConns:        maxConns,
			MaxIdleConnsPerHost: maxIdleConns,
		},
	}
}

// BodyExcerpt reads at most limit bytes from r and returns the trimmed
// text. Used to bound error-body excerpts in failure messages.
func BodyExcerpt(r io.Reader, limit int) string {
	b, _ := io.ReadAll(io.LimitReader(r, int64(limit)))
	return strings.TrimSpace(string(b))
}
