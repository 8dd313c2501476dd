// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package courtlistener

import "fmt"

// ErrorKind classifies upstream failures into the small vocabulary the
// tool surface reports to the caller.
type ErrorKind int

const (
	// ErrConfig means no API token is configured; no network I/O was attempted.
	ErrConfig ErrorKind = iota

	// ErrAuth means the upstream rejected the token (HTTP 401).
	ErrAuth

	// ErrQuota means the upstream rate limit was hit (HTTP 429).
	ErrQuota

	// ErrNotFound means the upstream returned HTTP 404.
	ErrNotFound

	// ErrHTTP covers any other non-2xx status.
	ErrHTTP

	// ErrTimeout means the request exceeded the fixed 30-second deadline.
	ErrTimeout

	// ErrConnection means the transport failed before any HTTP response.
	ErrConnection
)

// dailyQuota is CourtListener's published request allowance, surfaced in
// the quota error message for user guidance.
const dailyQuota = "5,000"

// APIError is a classified upstream failure. Its Error string is the exact
// text returned to the caller as the tool result.
type APIError struct {
	Kind   ErrorKind
	Status int    // HTTP status, set for ErrHTTP
	Body   string // bounded body excerpt, set for ErrHTTP
	Cause  error  // underlying transport error, set for ErrTimeout/ErrConnection
}

func (e *APIError) Error() string {
	switch e.Kind {
	case ErrConfig:
		return "Error: COURTLISTENER_API_TOKEN environment variable is not set."
	case ErrAuth:
		return "Error: Invalid API token. Check COURTLISTENER_API_TOKEN."
	case ErrQuota:
		return fmt.Sprintf("Error: Rate limit exceeded. CourtListener allows %s requests/day.", dailyQuota)
	case ErrNotFound:
		return "Error: Resource not found."
	case ErrTimeout:
		return "Error: Request timed out after 30 seconds."
	case ErrConnection:
		return fmt.Sprintf("Error: Connection failed — %v", e.Cause)
	default:
		return fmt.Sprintf("Error: HTTP %d — %s", e.Status, e.Body)
	}
}

func (e *APIError) Unwrap() error { return e.Cause }
