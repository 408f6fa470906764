// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client used to talk to the registry.
package httputil

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Response is the minimal response contract callers depend on.
type Response interface {
	Body() []byte
	StatusCode() int
	Header(key string) string
}

// Client abstracts a single GET so callers can inject test transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// StatusError reports a non-success HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.StatusCode)
}

// RestyClient adapts resty.Client to the Client interface. It never retries.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient returns a client whose requests are bounded by timeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	return &RestyClient{client: c}
}

// Get performs a GET with the given headers. Transport failures and
// timeouts are returned as errors; HTTP status checking is left to the
// caller (see CheckStatus).
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	return &restyResponse{resp: resp}, nil
}

// CheckStatus returns a *StatusError unless resp carries a 2xx status.
func CheckStatus(url string, resp Response) error {
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return &StatusError{URL: url, StatusCode: code}
	}
	return nil
}

type restyResponse struct {
	resp *resty.Response
}

func (r *restyResponse) Body() []byte             { return r.resp.Body() }
func (r *restyResponse) StatusCode() int          { return r.resp.StatusCode() }
func (r *restyResponse) Header(key string) string { return r.resp.Header().Get(key) }
