package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace identifier between the client
// and the backend. Both sides log it as trace_id.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(payload).Post(endpoint)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool. The
// backend answers every action with a JSON envelope, so the client asks for
// JSON explicitly.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
