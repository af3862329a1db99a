package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRetry enables retries of transport failures and of responses whose
// status says the server is temporarily unable to accept the request
// (429, 502, 503, 504). The wait doubles between attempts up to maxWait.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithRetry(2, 200*time.Millisecond, 2*time.Second)
func (c *HTTPClient) WithRetry(count int, wait, maxWait time.Duration) *HTTPClient {
	c.Client.
		SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(maxWait).
		AddRetryCondition(IsTransientResponse)
	return c
}

// IsTransientResponse reports whether a request is worth repeating.
func IsTransientResponse(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}

	switch resp.StatusCode() {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
