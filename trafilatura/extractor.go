// Package trafilatura implements toolscout.TextExtractor with go-trafilatura.
package trafilatura

import (
	"errors"
	"net/url"
	"strings"

	"github.com/fwojciec/toolscout"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements toolscout.TextExtractor at compile time.
var _ toolscout.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the title and main text.
func (e *Extractor) ExtractText(rawHTML string, pageURL string) (*toolscout.TextResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			opts.OriginalURL = u
		}
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &toolscout.TextResult{
		Title: strings.TrimSpace(result.Metadata.Title),
		Text:  strings.Join(strings.Fields(result.ContentText), " "),
	}, nil
}
