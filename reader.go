package letterfreq

import "context"

// Link is a link target read from an element's href attribute.
// Valid is false when the element had no href attribute at all.
type Link struct {
	Href  string
	Valid bool
}

// LinkReader reads link targets from a page.
type LinkReader interface {
	// ReadLinks fetches pageURL and returns the href of every element
	// matching selector, in document order. Duplicates are kept and
	// elements without an href are returned with Valid set to false.
	ReadLinks(ctx context.Context, pageURL, selector string) ([]Link, error)
}

// ContentReader reads the main text of a page.
type ContentReader interface {
	// ReadContent fetches pageURL, removes every subtree matching any of
	// excludeSelectors, and returns the concatenated text of the elements
	// matching contentSelector. Returns "" when nothing matches.
	ReadContent(ctx context.Context, pageURL, contentSelector string, excludeSelectors []string) (string, error)
}
