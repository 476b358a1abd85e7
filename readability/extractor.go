// Package readability implements toolscout.TextExtractor with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/toolscout"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements toolscout.TextExtractor at compile time.
var _ toolscout.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the article title and text.
// pageURL may be empty.
func (e *Extractor) ExtractText(rawHTML string, pageURL string) (*toolscout.TextResult, error) {
	if rawHTML == "" {
		return nil, toolscout.Errorf(toolscout.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, toolscout.Errorf(toolscout.EINVALID, "invalid page URL: %v", err)
		}
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	return &toolscout.TextResult{
		Title: strings.TrimSpace(article.Title),
		Text:  strings.Join(strings.Fields(article.TextContent), " "),
	}, nil
}
