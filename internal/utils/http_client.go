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

// HTTPClientOptions tunes a client created by NewHTTPClient. Zero values
// keep resty's defaults.
type HTTPClientOptions struct {
	// Timeout bounds a single request.
	Timeout time.Duration
	// RetryCount is the number of retries after the first attempt.
	RetryCount int
	// RetryWaitTime is the initial back-off between attempts.
	RetryWaitTime time.Duration
	// UserAgent is sent with every request when set.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, cookie jar and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 30 * time.Second})
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/users")
func NewHTTPClient(opts ...HTTPClientOptions) *HTTPClient {
	client := resty.New()

	for _, o := range opts {
		if o.Timeout > 0 {
			client.SetTimeout(o.Timeout)
		}
		if o.RetryCount > 0 {
			client.SetRetryCount(o.RetryCount).
				AddRetryCondition(RetryOnServerError)
		}
		if o.RetryWaitTime > 0 {
			client.SetRetryWaitTime(o.RetryWaitTime)
		}
		if o.UserAgent != "" {
			client.SetHeader("User-Agent", o.UserAgent)
		}
	}

	return &HTTPClient{Client: client}
}

// RetryOnServerError is a resty retry condition that retries on rate
// limiting and 5xx responses. Transport errors are retried by resty itself.
func RetryOnServerError(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
