package scout

import (
	"context"

	"github.com/fwojciec/toolscout"
)

// Ensure Loader implements toolscout.PageFetcher at compile time.
var _ toolscout.PageFetcher = (*Loader)(nil)

// Loader fetches raw HTML and parses it into a Page.
type Loader struct {
	Fetcher toolscout.Fetcher
	Parser  toolscout.PageParser
}

// NewLoader creates a new Loader.
func NewLoader(fetcher toolscout.Fetcher, parser toolscout.PageParser) *Loader {
	return &Loader{Fetcher: fetcher, Parser: parser}
}

// FetchPage returns the parsed page at url. Any failure is reported as
// EUNAVAILABLE.
func (l *Loader) FetchPage(ctx context.Context, url string) (*toolscout.Page, error) {
	html, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, toolscout.Errorf(toolscout.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	page, err := l.Parser.Parse(html, url)
	if err != nil {
		return nil, toolscout.Errorf(toolscout.EUNAVAILABLE, "parse %s: %v", url, err)
	}
	return page, nil
}
