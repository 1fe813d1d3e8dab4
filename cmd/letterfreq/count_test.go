package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/letterfreq"
	"github.com/fwojciec/letterfreq/crawl"
	"github.com/fwojciec/letterfreq/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCrawler returns a crawler over a single chapter page whose text is
// content, or whose read fails with readErr.
func newTestCrawler(content string, readErr error) *crawl.Crawler {
	site := letterfreq.DefaultSite()
	site.BaseURL = "https://example.com"

	links := &mock.LinkReader{
		ReadLinksFn: func(_ context.Context, pageURL, _ string) ([]letterfreq.Link, error) {
			return []letterfreq.Link{{Href: pageURL + "/next", Valid: true}}, nil
		},
	}
	contents := &mock.ContentReader{
		ReadContentFn: func(_ context.Context, _, _ string, _ []string) (string, error) {
			return content, readErr
		},
	}
	return &crawl.Crawler{Site: site, Links: links, Contents: contents}
}

func TestCountCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("hands the report to every writer in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		var written *letterfreq.Report
		store := &mock.ReportService{
			WriteReportFn: func(_ context.Context, report *letterfreq.Report) error {
				order = append(order, "store")
				report.ID = "run-1"
				return nil
			},
		}
		file := &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, report *letterfreq.Report) error {
				order = append(order, "file")
				written = report
				return nil
			},
		}

		var stderr bytes.Buffer
		deps := &Dependencies{
			Ctx:     context.Background(),
			Stderr:  &stderr,
			Crawler: newTestCrawler("Ce zi", nil),
			Store:   store,
			Writers: []letterfreq.ReportWriter{store, file},
		}

		err := (&CountCmd{Output: "out.json"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"store", "file"}, order)
		require.NotNil(t, written)
		assert.Equal(t, "run-1", written.ID)
		assert.Equal(t, letterfreq.Frequencies{
			{Key: 'ç', Count: 1},
			{Key: 'e', Count: 1},
			{Key: 'z', Count: 1},
			{Key: 'i', Count: 1},
		}, written.Frequencies)
		assert.Contains(t, stderr.String(), "Stored run run-1")
		assert.Contains(t, stderr.String(), "Wrote out.json")
	})

	t.Run("writes nothing when the crawl fails", func(t *testing.T) {
		t.Parallel()

		file := &mock.ReportWriter{
			WriteReportFn: func(context.Context, *letterfreq.Report) error {
				t.Fatal("writer must not be called")
				return nil
			},
		}

		var stderr bytes.Buffer
		deps := &Dependencies{
			Ctx:     context.Background(),
			Stderr:  &stderr,
			Crawler: newTestCrawler("", letterfreq.Errorf(letterfreq.EUNAVAILABLE, "HTTP 503")),
			Writers: []letterfreq.ReportWriter{file},
		}

		err := (&CountCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, letterfreq.EUNAVAILABLE, letterfreq.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: HTTP 503")
	})

	t.Run("stops at the first failing writer", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("disk full")
		first := &mock.ReportWriter{
			WriteReportFn: func(context.Context, *letterfreq.Report) error { return boom },
		}
		second := &mock.ReportWriter{
			WriteReportFn: func(context.Context, *letterfreq.Report) error {
				t.Fatal("second writer must not be called")
				return nil
			},
		}

		var stderr bytes.Buffer
		deps := &Dependencies{
			Ctx:     context.Background(),
			Stderr:  &stderr,
			Crawler: newTestCrawler("a", nil),
			Writers: []letterfreq.ReportWriter{first, second},
		}

		err := (&CountCmd{}).Run(deps)

		require.ErrorIs(t, err, boom)
	})
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{name: "short path", url: "https://biblior.net/node/11", maxLen: 40, want: "/node/11"},
		{name: "empty path", url: "https://biblior.net", maxLen: 40, want: "/"},
		{name: "long path keeps suffix", url: "https://biblior.net/carti/amintiri-din-copilarie/partea-intai", maxLen: 20, want: "...arie/partea-intai"},
		{name: "unparsable URL", url: "://bad", maxLen: 40, want: "://bad"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, truncateURL(tc.url, tc.maxLen))
		})
	}
}
