// Package goquery implements letterfreq.LinkReader and
// letterfreq.ContentReader using CSS selectors over parsed HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/letterfreq"
)

// ExtractLinks parses HTML and returns the href of every element matching
// selector, in document order. Duplicates are kept. Elements without an
// href attribute yield a Link with Valid set to false.
func ExtractLinks(html string, selector string) ([]letterfreq.Link, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var links []letterfreq.Link
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		links = append(links, letterfreq.Link{Href: href, Valid: exists})
	})
	return links, nil
}

// ExtractContent parses HTML, removes every subtree matching any of
// excludeSelectors, and returns the concatenated text of the elements
// matching contentSelector. Nested matches contribute their text once per
// match. Returns "" if nothing matches.
func ExtractContent(html string, contentSelector string, excludeSelectors []string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}

	// All removals happen before any text is read.
	for _, exclude := range excludeSelectors {
		doc.Find(exclude).Remove()
	}

	var b strings.Builder
	doc.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		b.WriteString(sel.Text())
	})
	return b.String(), nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, letterfreq.Errorf(letterfreq.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
