package mock

import (
	"context"

	"github.com/fwojciec/toolscout"
)

var (
	_ toolscout.TextExtractor    = (*TextExtractor)(nil)
	_ toolscout.ListingExtractor = (*ListingExtractor)(nil)
)

// TextExtractor is a mock implementation of toolscout.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string, pageURL string) (*toolscout.TextResult, error)
}

func (e *TextExtractor) ExtractText(html string, pageURL string) (*toolscout.TextResult, error) {
	return e.ExtractTextFn(html, pageURL)
}

// ListingExtractor is a mock implementation of toolscout.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(ctx context.Context, root toolscout.Node) *toolscout.Extraction
}

func (e *ListingExtractor) Extract(ctx context.Context, root toolscout.Node) *toolscout.Extraction {
	return e.ExtractFn(ctx, root)
}
