package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/toolscout"
)

// Ensure TextExtractor implements toolscout.TextExtractor at compile time.
var _ toolscout.TextExtractor = (*TextExtractor)(nil)

// boilerplateTerms mark elements whose text is not main content.
var boilerplateTerms = []string{
	"header", "footer", "nav", "menu", "sidebar", "advertisement", "banner", "popup",
}

// TextExtractor finds main text with simple structural heuristics:
// the <main> element if present, otherwise the text of content elements
// not marked as boilerplate, otherwise all document text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText parses rawHTML and returns its title and main text.
func (e *TextExtractor) ExtractText(rawHTML string, _ string) (*toolscout.TextResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, toolscout.Errorf(toolscout.EINVALID, "failed to parse HTML: %v", err)
	}
	return &toolscout.TextResult{
		Title: documentTitle(doc),
		Text:  mainText(doc),
	}, nil
}

func documentTitle(doc *goquery.Document) string {
	return nodeText(doc.Find("title").First())
}

func mainText(doc *goquery.Document) string {
	if text := nodeText(doc.Find("main").First()); text != "" {
		return text
	}

	var parts []string
	doc.Find("p, article, main, div").Each(func(_ int, s *goquery.Selection) {
		if isBoilerplate(s) {
			return
		}
		if text := nodeText(s); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}

	return nodeText(doc.Selection)
}

// isBoilerplate reports whether s carries a boilerplate term as a class
// token or anywhere in its id.
func isBoilerplate(s *goquery.Selection) bool {
	classes := strings.Fields(s.AttrOr("class", ""))
	id := s.AttrOr("id", "")
	for _, term := range boilerplateTerms {
		for _, c := range classes {
			if c == term {
				return true
			}
		}
		if strings.Contains(id, term) {
			return true
		}
	}
	return false
}
