package toolscout

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML served at url. Network errors, timeouts and
	// non-2xx responses are errors. The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// PageParser turns raw HTML into a Page.
type PageParser interface {
	// Parse builds a Page from html served at pageURL.
	Parse(html string, pageURL string) (*Page, error)
}

// PageFetcher fetches and parses a page in one step.
type PageFetcher interface {
	// FetchPage returns EUNAVAILABLE when the page could not be retrieved.
	// Callers treat that as "no data", not as a fatal condition.
	FetchPage(ctx context.Context, url string) (*Page, error)
}
