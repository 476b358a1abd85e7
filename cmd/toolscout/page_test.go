package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/toolscout"
	main "github.com/fwojciec/toolscout/cmd/toolscout"
	"github.com/fwojciec/toolscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<html><head><title>Acme Blog</title></head><body>
<main><p>Acme ships a new writing assistant today.</p></main>
<a href="https://acme.ai/pricing">Pricing</a>
<a href="https://www.youtube.com/watch?v=abc123">Launch video</a>
</body></html>`

func TestPageCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints links and videos as a list", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Fetcher:    staticFetcher(articleHTML),
			Summarizer: toolscout.NewDisabledSummarizer("no key"),
		}

		cmd := &main.PageCmd{URLs: []string{"https://acme.ai/blog"}, Format: []string{"list"}, Text: "heuristic"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "--- Website Content (List Format) ---")
		assert.Contains(t, stdout.String(), "Href: https://acme.ai/pricing")
		assert.Contains(t, stdout.String(), "Title: Launch video")
	})

	t.Run("prints the summary in paragraphs", func(t *testing.T) {
		t.Parallel()

		var gotMax, gotMin int
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Fetcher: staticFetcher(articleHTML),
			Summarizer: &mock.Summarizer{
				StateFn: func() toolscout.SummarizerState { return toolscout.SummarizerReady },
				SummarizeFn: func(_ context.Context, _ string, maxLength, minLength int) (string, error) {
					gotMax, gotMin = maxLength, minLength
					return "Acme launched an assistant.", nil
				},
			},
		}

		cmd := &main.PageCmd{URLs: []string{"https://acme.ai/blog"}, Format: []string{"paragraphs"}, Text: "heuristic"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Website Summary:\nAcme launched an assistant.")
		assert.Equal(t, 150, gotMax)
		assert.Equal(t, 40, gotMin)
	})

	t.Run("falls back to later URLs", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://acme.ai/blog" {
						return articleHTML, nil
					}
					return "", errors.New("HTTP 404")
				},
			},
		}

		cmd := &main.PageCmd{
			URLs:   []string{"https://acme.ai/missing", "https://acme.ai/blog"},
			Format: []string{"list"},
			Text:   "readability",
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://acme.ai/pricing")
	})

	t.Run("reports no data when every URL fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", errors.New("HTTP 500")
				},
			},
		}

		cmd := &main.PageCmd{URLs: []string{"https://acme.ai/a", "https://acme.ai/b"}, Format: []string{"paragraphs"}, Text: "trafilatura"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "no data extracted from 2 URL(s)")
		assert.Contains(t, stdout.String(), "No website data provided.")
	})
}
