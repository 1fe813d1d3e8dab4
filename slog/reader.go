package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/letterfreq"
)

// Compile-time interface verification.
var (
	_ letterfreq.LinkReader    = (*LoggingLinkReader)(nil)
	_ letterfreq.ContentReader = (*LoggingContentReader)(nil)
)

// LoggingLinkReader wraps a LinkReader with logging.
type LoggingLinkReader struct {
	next   letterfreq.LinkReader
	logger *slog.Logger
}

// NewLoggingLinkReader creates a new LoggingLinkReader.
func NewLoggingLinkReader(next letterfreq.LinkReader, logger *slog.Logger) *LoggingLinkReader {
	return &LoggingLinkReader{next: next, logger: logger}
}

// ReadLinks delegates to the wrapped reader and logs the number of links.
func (r *LoggingLinkReader) ReadLinks(ctx context.Context, pageURL, selector string) (links []letterfreq.Link, err error) {
	defer func(begin time.Time) {
		missing := 0
		for _, l := range links {
			if !l.Valid {
				missing++
			}
		}
		r.logger.Info("read links",
			"url", pageURL,
			"selector", selector,
			"count", len(links),
			"missing_href", missing,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadLinks(ctx, pageURL, selector)
}

// LoggingContentReader wraps a ContentReader with debug logging.
type LoggingContentReader struct {
	next   letterfreq.ContentReader
	logger *slog.Logger
}

// NewLoggingContentReader creates a new LoggingContentReader.
func NewLoggingContentReader(next letterfreq.ContentReader, logger *slog.Logger) *LoggingContentReader {
	return &LoggingContentReader{next: next, logger: logger}
}

// ReadContent delegates to the wrapped reader and logs the text length.
func (r *LoggingContentReader) ReadContent(ctx context.Context, pageURL, contentSelector string, excludeSelectors []string) (text string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("read content",
			"url", pageURL,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadContent(ctx, pageURL, contentSelector, excludeSelectors)
}
