package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/mock"
	tsslog "github.com/fwojciec/toolscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := tsslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := tsslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := tsslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingPageFetcher_FetchPage(t *testing.T) {
	t.Parallel()

	t.Run("logs page contents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageFetcher{
			FetchPageFn: func(_ context.Context, url string) (*toolscout.Page, error) {
				return &toolscout.Page{
					URL:   url,
					Title: "Tools",
					Text:  "three word text",
					Links: []toolscout.Link{{Text: "a", Href: "https://a.dev"}},
				}, nil
			},
		}

		fetcher := tsslog.NewLoggingPageFetcher(inner, logger)
		page, err := fetcher.FetchPage(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Tools", page.Title)
		output := buf.String()
		assert.Contains(t, output, "msg=page")
		assert.Contains(t, output, "words=3")
		assert.Contains(t, output, "links=1")
		assert.Contains(t, output, "videos=0")
	})

	t.Run("warns when page is unavailable", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageFetcher{
			FetchPageFn: func(context.Context, string) (*toolscout.Page, error) {
				return nil, toolscout.Errorf(toolscout.EUNAVAILABLE, "HTTP 503")
			},
		}

		fetcher := tsslog.NewLoggingPageFetcher(inner, logger)
		_, err := fetcher.FetchPage(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, `msg="page unavailable"`)
		assert.Contains(t, output, "HTTP 503")
	})
}
