package scout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/mock"
	"github.com/fwojciec/toolscout/scout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_FetchPage(t *testing.T) {
	t.Parallel()

	t.Run("parses fetched HTML", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<html><title>T</title></html>", nil
			},
		}
		parser := &mock.PageParser{
			ParseFn: func(html, pageURL string) (*toolscout.Page, error) {
				return &toolscout.Page{URL: pageURL, Title: "T"}, nil
			},
		}

		page, err := scout.NewLoader(fetcher, parser).FetchPage(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", page.URL)
		assert.Equal(t, "T", page.Title)
	})

	t.Run("reports fetch failure as unavailable", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", errors.New("HTTP 404 for https://example.com")
			},
		}

		_, err := scout.NewLoader(fetcher, &mock.PageParser{}).FetchPage(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, toolscout.EUNAVAILABLE, toolscout.ErrorCode(err))
		assert.Contains(t, toolscout.ErrorMessage(err), "HTTP 404")
	})

	t.Run("reports parse failure as unavailable", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "x", nil },
		}
		parser := &mock.PageParser{
			ParseFn: func(string, string) (*toolscout.Page, error) {
				return nil, toolscout.Errorf(toolscout.EINVALID, "failed to parse HTML")
			},
		}

		_, err := scout.NewLoader(fetcher, parser).FetchPage(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, toolscout.EUNAVAILABLE, toolscout.ErrorCode(err))
	})
}
