// Package scout drives page fetching, listing extraction, and summarization.
package scout

import (
	"context"

	"github.com/fwojciec/toolscout"
)

// Page summary bounds in words.
const (
	PageSummaryMaxWords = 150
	PageSummaryMinWords = 40
)

// Service runs the tools and website workflows.
type Service struct {
	Pages    toolscout.PageFetcher
	Listings toolscout.ListingExtractor

	// Summarizer shortens page text. Nil disables page summaries.
	Summarizer toolscout.Summarizer
}

// NewService creates a new Service.
func NewService(pages toolscout.PageFetcher, listings toolscout.ListingExtractor, summarizer toolscout.Summarizer) *Service {
	return &Service{Pages: pages, Listings: listings, Summarizer: summarizer}
}

// Tools fetches the directory page at url and extracts its tool listings.
// A page that cannot be fetched returns EUNAVAILABLE; a page without
// listings returns an empty, degenerate Extraction.
func (s *Service) Tools(ctx context.Context, url string) (*toolscout.Extraction, error) {
	page, err := s.Pages.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.Listings.Extract(ctx, page.Root), nil
}

// Website fetches the first of urls that can be retrieved and, when the
// summarizer is ready, summarizes its main text. A failed summary leaves
// Page.Summary empty.
func (s *Service) Website(ctx context.Context, urls ...string) (*toolscout.Page, error) {
	if len(urls) == 0 {
		return nil, toolscout.Errorf(toolscout.EINVALID, "at least one URL required")
	}

	var page *toolscout.Page
	var lastErr error
	for _, url := range urls {
		p, err := s.Pages.FetchPage(ctx, url)
		if err == nil {
			page = p
			break
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	if page == nil {
		return nil, toolscout.Errorf(toolscout.EUNAVAILABLE, "no data extracted from %d URL(s): %s",
			len(urls), toolscout.ErrorMessage(lastErr))
	}

	if s.Summarizer != nil && s.Summarizer.State() == toolscout.SummarizerReady && page.Text != "" {
		if summary, err := s.Summarizer.Summarize(ctx, page.Text, PageSummaryMaxWords, PageSummaryMinWords); err == nil {
			page.Summary = summary
		}
	}
	return page, nil
}
