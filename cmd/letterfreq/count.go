package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/letterfreq"
	"github.com/fwojciec/letterfreq/crawl"
)

// Run crawls the site, counts every chapter page and hands the report to
// each writer. Nothing is written unless the whole crawl succeeds.
func (c *CountCmd) Run(deps *Dependencies) error {
	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Found %d pages\n", e.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "\r[%d/%d] %s", e.Completed, e.Total, truncateURL(e.URL, 40))
		case crawl.ProgressFinished:
			// Clear progress line
			fmt.Fprintf(deps.Stderr, "\r%80s\r", "")
		}
	}

	report, err := deps.Crawler.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "\nerror: %s\n", letterfreq.ErrorMessage(err))
		return err
	}

	for _, w := range deps.Writers {
		if err := w.WriteReport(deps.Ctx, report); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing report: %v\n", err)
			return err
		}
	}

	total := 0
	for _, f := range report.Frequencies {
		total += f.Count
	}
	fmt.Fprintf(deps.Stderr, "Counted %d characters (%d distinct) on %d pages\n",
		total, len(report.Frequencies), len(report.Pages))
	if deps.Store != nil {
		fmt.Fprintf(deps.Stderr, "Stored run %s\n", report.ID)
	}
	if !c.Stdout {
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", c.Output)
	}

	return nil
}

// truncateURL shortens a URL for display by showing only the path.
// This makes progress more useful when many URLs share the same host prefix.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		// Fallback to simple right-truncation
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	// Truncate from the left to show the unique suffix
	return "..." + path[len(path)-maxLen+3:]
}
