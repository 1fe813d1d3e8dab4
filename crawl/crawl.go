// Package crawl walks the catalogue of a literary site and aggregates the
// letter frequencies of every chapter page it reaches.
package crawl

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/letterfreq"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// Crawler discovers chapter pages and counts their letters.
type Crawler struct {
	Site     letterfreq.Site
	Links    letterfreq.LinkReader
	Contents letterfreq.ContentReader

	// Orthography defaults to letterfreq.Romanian.
	Orthography *letterfreq.Orthography

	// Concurrency bounds the number of chapter pages read at once.
	// Values below 2 read pages one after another.
	Concurrency int

	// Compose NFC-composes page text before filtering, so that a letter
	// followed by combining marks is counted as one precomposed glyph.
	// Off by default: the soft consonant rule then sees the text as served.
	Compose bool
}

// ProgressEvent reports progress while chapter pages are counted.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of counting a single chapter page.
type pageResult struct {
	table *letterfreq.Table
	stat  letterfreq.PageStat
}

// Run discovers every chapter page, counts it, and returns the report with
// frequencies sorted by descending count. Any error aborts the whole run.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*letterfreq.Report, error) {
	if err := c.Site.Validate(); err != nil {
		return nil, err
	}

	startedAt := time.Now().UTC()

	urls, err := c.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovery: %w", err)
	}

	table := letterfreq.NewTable()
	pages, err := c.CountPages(ctx, urls, table, progress)
	if err != nil {
		return nil, err
	}

	return &letterfreq.Report{
		Site:        c.Site.BaseURL,
		StartedAt:   startedAt,
		FinishedAt:  time.Now().UTC(),
		Pages:       pages,
		Frequencies: table.Sorted(),
	}, nil
}

// Discover follows the catalogue, the per-letter listings and the per-work
// chapter lists, and returns the chapter page URLs in discovery order.
// Duplicates are kept.
func (c *Crawler) Discover(ctx context.Context) ([]string, error) {
	catalog, err := c.Site.CatalogURL()
	if err != nil {
		return nil, err
	}

	listings, err := c.readLinks(ctx, []string{catalog}, c.Site.IndexSelector)
	if err != nil {
		return nil, err
	}

	works, err := c.readLinks(ctx, listings, c.Site.ListingSelector)
	if err != nil {
		return nil, err
	}

	return c.readLinks(ctx, works, c.Site.ChapterSelector)
}

// readLinks reads the links matching selector on every page and returns
// their resolved URLs as one flat list.
func (c *Crawler) readLinks(ctx context.Context, pages []string, selector string) ([]string, error) {
	nested := make([][]string, 0, len(pages))
	for _, page := range pages {
		links, err := c.Links.ReadLinks(ctx, page, selector)
		if err != nil {
			return nil, err
		}

		urls := make([]string, 0, len(links))
		for _, link := range links {
			u, err := c.Site.Resolve(link)
			if err != nil {
				return nil, fmt.Errorf("link on %s: %w", page, err)
			}
			urls = append(urls, u)
		}
		nested = append(nested, urls)
	}
	return letterfreq.Flatten(nested), nil
}

// CountPages counts every page in urls and merges the counts into table,
// which the caller owns. Pages are merged in the order of urls regardless
// of Concurrency, so key order for equal counts is deterministic.
// On error the table may hold counts from pages read before the failure.
func (c *Crawler) CountPages(ctx context.Context, urls []string, table *letterfreq.Table, progress ProgressFunc) ([]letterfreq.PageStat, error) {
	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var stats []letterfreq.PageStat
	var err error
	if c.Concurrency < 2 {
		stats, err = c.countSequential(ctx, urls, table, progress)
	} else {
		stats, err = c.countConcurrent(ctx, urls, table, progress)
	}
	if err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return stats, nil
}

func (c *Crawler) countSequential(ctx context.Context, urls []string, table *letterfreq.Table, progress ProgressFunc) ([]letterfreq.PageStat, error) {
	stats := make([]letterfreq.PageStat, 0, len(urls))
	for i, u := range urls {
		result, err := c.countPage(ctx, i, u)
		if err != nil {
			return nil, err
		}
		table.Merge(result.table)
		stats = append(stats, result.stat)

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     len(urls),
				URL:       u,
			})
		}
	}
	return stats, nil
}

func (c *Crawler) countConcurrent(ctx context.Context, urls []string, table *letterfreq.Table, progress ProgressFunc) ([]letterfreq.PageStat, error) {
	results := make([]pageResult, len(urls))

	var mu sync.Mutex
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)

	for i, u := range urls {
		g.Go(func() error {
			result, err := c.countPage(gctx, i, u)
			if err != nil {
				return err
			}
			results[i] = result

			if progress != nil {
				mu.Lock()
				completed++
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: completed,
					Total:     len(urls),
					URL:       u,
				})
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := make([]letterfreq.PageStat, 0, len(urls))
	for _, result := range results {
		table.Merge(result.table)
		stats = append(stats, result.stat)
	}
	return stats, nil
}

// countPage reads, filters and counts a single chapter page.
func (c *Crawler) countPage(ctx context.Context, position int, pageURL string) (pageResult, error) {
	text, err := c.Contents.ReadContent(ctx, pageURL, c.Site.ContentSelector, c.Site.ExcludeSelectors)
	if err != nil {
		return pageResult{}, err
	}

	if c.Compose {
		text = norm.NFC.String(text)
	}

	o := c.orthography()
	chars := o.Filter(text)

	return pageResult{
		table: o.Count(chars),
		stat: letterfreq.PageStat{
			URL:      pageURL,
			Position: position,
			Chars:    len(chars),
			Hash:     hashContent(text),
		},
	}, nil
}

// hashContent identifies page text so that identical chapters can be
// spotted in the report.
func hashContent(content string) string {
	return strconv.FormatUint(xxhash.Sum64String(content), 16)
}

func (c *Crawler) orthography() *letterfreq.Orthography {
	if c.Orthography != nil {
		return c.Orthography
	}
	return letterfreq.Romanian
}
