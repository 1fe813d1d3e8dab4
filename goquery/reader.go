package goquery

import (
	"context"
	"fmt"

	"github.com/fwojciec/letterfreq"
)

// Compile-time interface verification.
var (
	_ letterfreq.LinkReader    = (*LinkReader)(nil)
	_ letterfreq.ContentReader = (*ContentReader)(nil)
)

// LinkReader fetches pages and extracts link targets with CSS selectors.
type LinkReader struct {
	fetcher letterfreq.Fetcher
}

// NewLinkReader creates a LinkReader that fetches pages with fetcher.
func NewLinkReader(fetcher letterfreq.Fetcher) *LinkReader {
	return &LinkReader{fetcher: fetcher}
}

// ReadLinks implements letterfreq.LinkReader.
func (r *LinkReader) ReadLinks(ctx context.Context, pageURL, selector string) ([]letterfreq.Link, error) {
	html, err := r.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("read links from %s: %w", pageURL, err)
	}
	return ExtractLinks(html, selector)
}

// ContentReader fetches pages and extracts their main text.
type ContentReader struct {
	fetcher letterfreq.Fetcher
}

// NewContentReader creates a ContentReader that fetches pages with fetcher.
func NewContentReader(fetcher letterfreq.Fetcher) *ContentReader {
	return &ContentReader{fetcher: fetcher}
}

// ReadContent implements letterfreq.ContentReader.
func (r *ContentReader) ReadContent(ctx context.Context, pageURL, contentSelector string, excludeSelectors []string) (string, error) {
	html, err := r.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("read content from %s: %w", pageURL, err)
	}
	return ExtractContent(html, contentSelector, excludeSelectors)
}
