package letterfreq

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the site crawled by a run without configuration.
const DefaultBaseURL = "https://biblior.net"

// Site describes the link structure of the crawled website: a catalogue
// page linking to per-letter listings, listings linking to works, and works
// linking to chapter pages whose content is counted.
type Site struct {
	BaseURL     string `yaml:"base_url"`
	CatalogPath string `yaml:"catalog_path"`

	// Selectors for the three discovery passes.
	IndexSelector   string `yaml:"index_selector"`
	ListingSelector string `yaml:"listing_selector"`
	ChapterSelector string `yaml:"chapter_selector"`

	// ContentSelector matches the text blocks of a chapter page.
	ContentSelector string `yaml:"content_selector"`
	// ExcludeSelectors match decorative subtrees removed before extraction.
	ExcludeSelectors []string `yaml:"exclude_selectors"`
}

// DefaultSite returns the configuration for biblior.net.
func DefaultSite() Site {
	return Site{
		BaseURL:         DefaultBaseURL,
		CatalogPath:     "/carti",
		IndexSelector:   ".views-summary-unformatted a",
		ListingSelector: "td.views-field a",
		ChapterSelector: "#content ul.menu li.leaf a",
		ContentSelector: "#content .content",
		ExcludeSelectors: []string{
			".fb-social-like-widget",
			".book-navigation",
		},
	}
}

// Validate returns an error if the site configuration is incomplete.
func (s *Site) Validate() error {
	if s.BaseURL == "" {
		return Errorf(EINVALID, "site base URL required")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid site base URL %q", s.BaseURL)
	}
	switch {
	case s.IndexSelector == "":
		return Errorf(EINVALID, "index selector required")
	case s.ListingSelector == "":
		return Errorf(EINVALID, "listing selector required")
	case s.ChapterSelector == "":
		return Errorf(EINVALID, "chapter selector required")
	case s.ContentSelector == "":
		return Errorf(EINVALID, "content selector required")
	}
	for _, sel := range s.ExcludeSelectors {
		if strings.TrimSpace(sel) == "" {
			return Errorf(EINVALID, "empty exclude selector")
		}
	}
	return nil
}

// CatalogURL returns the absolute URL of the catalogue page.
func (s *Site) CatalogURL() (string, error) {
	return s.resolve(s.CatalogPath)
}

// Resolve returns the absolute URL a link points to.
// Links without an href cannot be followed and yield EINVALID.
func (s *Site) Resolve(link Link) (string, error) {
	if !link.Valid {
		return "", Errorf(EINVALID, "link has no href attribute")
	}
	return s.resolve(link.Href)
}

func (s *Site) resolve(ref string) (string, error) {
	base, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid site base URL: %v", err)
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", Errorf(EINVALID, "invalid link %q: %v", ref, err)
	}
	return base.ResolveReference(u).String(), nil
}
