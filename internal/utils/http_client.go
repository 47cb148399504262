package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(nil)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// When rt is non-nil the client sends requests through it, which lets several
// clients share one connection pool. A nil rt gives the client resty's own
// default transport.
//
// Example usage:
//
//	client := utils.NewHTTPClient(sharedTransport)
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/twin")
func NewHTTPClient(rt http.RoundTripper) *HTTPClient {
	if rt == nil {
		return &HTTPClient{Client: resty.New()}
	}
	return &HTTPClient{Client: resty.New().SetTransport(rt)}
}
