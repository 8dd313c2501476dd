// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package courtlistener is the gateway to the CourtListener REST API. It
// issues authenticated requests against the v3 and v4 endpoints and maps
// every failure mode into the APIError vocabulary; callers never see a raw
// transport error.
package courtlistener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/caselaw-mcp/internal/httputil"
	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

// Default endpoint roots. The search endpoint moved to v4; citation lookup,
// clusters, and opinions remain on v3.
const (
	defaultBaseV3 = "https://www.courtlistener.com/api/rest/v3"
	defaultBaseV4 = "https://www.courtlistener.com/api/rest/v4"

	defaultUserAgent = "caselaw-mcp/0.1"
)

// Search limit bounds. Out-of-range values are clamped, not rejected.
const (
	minLimit = 1
	maxLimit = 20
)

// Client calls the CourtListener API through one shared, bounded
// connection pool. It is safe for concurrent use; tool invocations share
// no state beyond the pool itself.
type Client struct {
	token  string
	baseV3 string
	baseV4 string
	ua     string
	http   *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURLs overrides the v3 and v4 endpoint roots (useful for testing).
// Empty strings leave the corresponding default in place.
func WithBaseURLs(v3, v4 string) Option {
	return func(c *Client) {
		if v3 != "" {
			c.baseV3 = strings.TrimRight(v3, "/")
		}
		if v4 != "" {
			c.baseV4 = strings.TrimRight(v4, "/")
		}
	}
}

// WithHTTPClient sets a custom http.Client (e.g. an httptest client).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.ua = ua
		}
	}
}

// New constructs a Client. An empty token is permitted: the client is
// still usable, but every call fails with the configuration error before
// any network I/O.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:  token,
		baseV3: defaultBaseV3,
		baseV4: defaultBaseV4,
		ua:     defaultUserAgent,
		http:   httputil.NewPooledClient(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Close releases the pooled connections. Call once at process shutdown.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// SearchParams are the inputs to the v4 unified search endpoint. The
// document type is always "o" (opinions).
type SearchParams struct {
	Query       string
	Court       string
	FiledAfter  string
	FiledBefore string
	OrderBy     string
	Limit       int
}

// values encodes the params, applying the default sort and clamping the
// limit into [1, 20].
func (p SearchParams) values() url.Values {
	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = "score desc"
	}
	v := url.Values{
		"type":     {"o"},
		"q":        {p.Query},
		"order_by": {orderBy},
	}
	if p.Court != "" {
		v.Set("court", p.Court)
	}
	if p.FiledAfter != "" {
		v.Set("filed_after", p.FiledAfter)
	}
	if p.FiledBefore != "" {
		v.Set("filed_before", p.FiledBefore)
	}
	v.Set("limit", strconv.Itoa(clampLimit(p.Limit)))
	return v
}

func clampLimit(n int) int {
	if n < minLimit {
		return minLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

// Search queries the unified search endpoint for opinions.
func (c *Client) Search(ctx context.Context, p SearchParams) (types.SearchResponse, error) {
	var out types.SearchResponse
	err := c.get(ctx, c.baseV4+"/search/", p.values(), &out)
	return out, err
}

// LookupCitation resolves citations found in free text. The endpoint
// extracts every citation from the submitted text, so surrounding prose
// is allowed.
func (c *Client) LookupCitation(ctx context.Context, text string) ([]types.LookupEntry, error) {
	var out []types.LookupEntry
	form := url.Values{"text": {text}}
	err := c.postForm(ctx, c.baseV3+"/citation-lookup/", form, &out)
	return out, err
}

// Cluster fetches case-level metadata by cluster id.
func (c *Client) Cluster(ctx context.Context, id int64) (types.Cluster, error) {
	var out types.Cluster
	err := c.get(ctx, fmt.Sprintf("%s/clusters/%d/", c.baseV3, id), nil, &out)
	return out, err
}

// Opinion fetches a single opinion document by id.
func (c *Client) Opinion(ctx context.Context, id int64) (types.Opinion, error) {
	var out types.Opinion
	err := c.get(ctx, fmt.Sprintf("%s/opinions/%d/", c.baseV3, id), nil, &out)
	return out, err
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values, v any) error {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, v)
}

func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, v)
}

// bodyExcerptLimit bounds the error-body excerpt carried by ErrHTTP.
const bodyExcerptLimit = 300

// do executes the request and decodes the JSON response into v. A missing
// token fails before any network attempt; every other failure is mapped to
// an APIError kind. A single attempt is terminal — there are no retries.
func (c *Client) do(req *http.Request, v any) error {
	if c.token == "" {
		return &APIError{Kind: ErrConfig}
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("User-Agent", c.ua)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &APIError{Kind: ErrTimeout, Cause: err}
		}
		return &APIError{Kind: ErrConnection, Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &APIError{Kind: ErrAuth, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &APIError{Kind: ErrQuota, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return &APIError{Kind: ErrNotFound, Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &APIError{
			Kind:   ErrHTTP,
			Status: resp.StatusCode,
			Body:   httputil.BodyExcerpt(resp.Body, bodyExcerptLimit),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing CourtListener response: %w", err)
	}
	return nil
}

// isTimeout reports whether the transport error was a deadline expiry,
// either from the fixed client timeout or from the request context.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}
