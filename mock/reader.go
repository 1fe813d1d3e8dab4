package mock

import (
	"context"

	"github.com/fwojciec/letterfreq"
)

// Compile-time interface verification.
var (
	_ letterfreq.LinkReader    = (*LinkReader)(nil)
	_ letterfreq.ContentReader = (*ContentReader)(nil)
)

// LinkReader is a mock implementation of letterfreq.LinkReader.
type LinkReader struct {
	ReadLinksFn func(ctx context.Context, pageURL, selector string) ([]letterfreq.Link, error)
}

func (r *LinkReader) ReadLinks(ctx context.Context, pageURL, selector string) ([]letterfreq.Link, error) {
	return r.ReadLinksFn(ctx, pageURL, selector)
}

// ContentReader is a mock implementation of letterfreq.ContentReader.
type ContentReader struct {
	ReadContentFn func(ctx context.Context, pageURL, contentSelector string, excludeSelectors []string) (string, error)
}

func (r *ContentReader) ReadContent(ctx context.Context, pageURL, contentSelector string, excludeSelectors []string) (string, error) {
	return r.ReadContentFn(ctx, pageURL, contentSelector, excludeSelectors)
}
