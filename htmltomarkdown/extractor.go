// Package htmltomarkdown implements toolscout.TextExtractor by rendering the
// main content of a page as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/toolscout"
)

// Ensure Extractor implements toolscout.TextExtractor at compile time.
var _ toolscout.TextExtractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first non-empty match is converted.
var contentSelectors = []string{"main", "article", "body"}

// Extractor wraps html-to-markdown to extract main content as Markdown.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(
				table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal),
			),
		),
	)
	return &Extractor{conv: conv}
}

// ExtractText converts the main content of rawHTML to Markdown. Relative
// links are resolved against pageURL when it is set.
func (e *Extractor) ExtractText(rawHTML string, pageURL string) (*toolscout.TextResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, toolscout.Errorf(toolscout.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, toolscout.Errorf(toolscout.EINVALID, "failed to parse HTML: %v", err)
	}

	content := rawHTML
	for _, sel := range contentSelectors {
		s := doc.Find(sel).First()
		if s.Length() == 0 || strings.TrimSpace(s.Text()) == "" {
			continue
		}
		if h, err := goquery.OuterHtml(s); err == nil {
			content = h
			break
		}
	}

	md, err := e.conv.ConvertString(content, converter.WithDomain(pageURL))
	if err != nil {
		return nil, err
	}

	return &toolscout.TextResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  strings.TrimSpace(md),
	}, nil
}
