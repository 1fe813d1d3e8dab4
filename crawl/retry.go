package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/letterfreq"
)

var _ letterfreq.Fetcher = (*RetryFetcher)(nil)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// RetryDelays returns n backoff delays starting at 1s and doubling:
// 1s, 2s, 4s, ...
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	d := time.Second
	for i := 0; i < n; i++ {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// RetryFetcher retries failed fetches after each of its delays.
// With no delays it makes exactly one attempt.
type RetryFetcher struct {
	next   letterfreq.Fetcher
	delays []time.Duration
	logger LogFunc
}

// NewRetryFetcher wraps next. The logger, if not nil, is called before
// each retry.
func NewRetryFetcher(next letterfreq.Fetcher, delays []time.Duration, logger LogFunc) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch attempts the fetch up to len(delays)+1 times and returns the last
// error if every attempt fails.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if f.logger != nil {
			f.logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
