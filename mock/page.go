package mock

import (
	"context"

	"github.com/fwojciec/toolscout"
)

var (
	_ toolscout.PageFetcher = (*PageFetcher)(nil)
	_ toolscout.PageParser  = (*PageParser)(nil)
)

// PageFetcher is a mock implementation of toolscout.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, url string) (*toolscout.Page, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, url string) (*toolscout.Page, error) {
	return f.FetchPageFn(ctx, url)
}

// PageParser is a mock implementation of toolscout.PageParser.
type PageParser struct {
	ParseFn func(html string, pageURL string) (*toolscout.Page, error)
}

func (p *PageParser) Parse(html string, pageURL string) (*toolscout.Page, error) {
	return p.ParseFn(html, pageURL)
}
