// Package http provides an HTTP-based implementation of letterfreq.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/letterfreq"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Zero means requests never time out on the client side.
const DefaultFetchTimeout time.Duration = 0

// Ensure Fetcher implements letterfreq.Fetcher at compile time.
var _ letterfreq.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain GET requests.
// Bodies are decoded to UTF-8 according to the declared or sniffed charset.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	checkStatus bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// By default requests have no client timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient replaces the underlying HTTP client. The client's own
// timeout is left untouched.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithStatusCheck makes non-200 responses fail with EUNAVAILABLE instead of
// returning their body.
func WithStatusCheck() Option {
	return func(f *Fetcher) {
		f.checkStatus = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Transport failures are returned as EUNAVAILABLE. A completed response
// returns its body whatever the status, unless WithStatusCheck is set.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", letterfreq.Errorf(letterfreq.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", letterfreq.Errorf(letterfreq.EUNAVAILABLE, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if f.checkStatus && resp.StatusCode != http.StatusOK {
		return "", letterfreq.Errorf(letterfreq.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", letterfreq.Errorf(letterfreq.EINVALID, "decode %s: %v", url, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", letterfreq.Errorf(letterfreq.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(data), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
