package letterfreq

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request for the URL and returns the body as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
