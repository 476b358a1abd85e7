package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/toolscout"
)

// Ensure Parser implements toolscout.PageParser at compile time.
var _ toolscout.PageParser = (*Parser)(nil)

var videoPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/shorts/|vimeo\.com/\d+)`)

// Parser turns raw HTML into a toolscout.Page.
type Parser struct {
	// Text extracts the main text. When nil or failing, the built-in
	// heuristics are used.
	Text toolscout.TextExtractor
}

// NewParser creates a Parser using text for main text extraction.
func NewParser(text toolscout.TextExtractor) *Parser {
	return &Parser{Text: text}
}

// Parse extracts the title, main text, links, and videos of a page.
// Only absolute http(s) links are kept, in document order.
func (p *Parser) Parse(rawHTML string, pageURL string) (*toolscout.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, toolscout.Errorf(toolscout.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &toolscout.Page{
		URL:   pageURL,
		Title: documentTitle(doc),
		Root:  NewNode(doc.Selection),
	}

	if p.Text != nil {
		if result, err := p.Text.ExtractText(rawHTML, pageURL); err == nil {
			page.Text = result.Text
			if page.Title == "" {
				page.Title = result.Title
			}
		}
	}
	if page.Text == "" {
		page.Text = mainText(doc)
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if !isAbsoluteHTTP(href) {
			return
		}
		text := nodeText(s)
		page.Links = append(page.Links, toolscout.Link{Text: text, Href: href})
		if videoPattern.MatchString(href) {
			page.Videos = append(page.Videos, toolscout.Video{
				URL:       href,
				Title:     text,
				SourceURL: pageURL,
			})
		}
	})

	return page, nil
}

func isAbsoluteHTTP(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
