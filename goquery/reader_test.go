package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/letterfreq"
	"github.com/fwojciec/letterfreq/goquery"
	"github.com/fwojciec/letterfreq/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkReader_ReadLinks(t *testing.T) {
	t.Parallel()

	t.Run("fetches page and extracts links", func(t *testing.T) {
		t.Parallel()

		var fetched string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = url
				return `<td class="views-field"><a href="/opera/baltagul">Baltagul</a></td>`, nil
			},
		}

		links, err := goquery.NewLinkReader(fetcher).ReadLinks(context.Background(), "https://biblior.net/carti/b", "td.views-field a")

		require.NoError(t, err)
		assert.Equal(t, "https://biblior.net/carti/b", fetched)
		assert.Equal(t, []letterfreq.Link{{Href: "/opera/baltagul", Valid: true}}, links)
	})

	t.Run("propagates fetch error with code", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", letterfreq.Errorf(letterfreq.EUNAVAILABLE, "connection refused")
			},
		}

		_, err := goquery.NewLinkReader(fetcher).ReadLinks(context.Background(), "https://biblior.net/carti", "a")

		require.Error(t, err)
		assert.Equal(t, letterfreq.EUNAVAILABLE, letterfreq.ErrorCode(err))
		assert.Contains(t, err.Error(), "https://biblior.net/carti")
	})
}

func TestContentReader_ReadContent(t *testing.T) {
	t.Parallel()

	t.Run("fetches page and extracts content", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return `<div id="content"><div class="content">Era odată<div class="book-navigation">next</div></div></div>`, nil
			},
		}

		text, err := goquery.NewContentReader(fetcher).ReadContent(context.Background(), "https://biblior.net/node/1", "#content .content", []string{".book-navigation"})

		require.NoError(t, err)
		assert.Equal(t, "Era odată", text)
	})

	t.Run("propagates fetch error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("timeout")
			},
		}

		_, err := goquery.NewContentReader(fetcher).ReadContent(context.Background(), "https://biblior.net/node/1", "#content .content", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})
}
