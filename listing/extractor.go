// Package listing extracts tool listings from directory pages.
//
// Extraction works on a toolscout.Node tree and tolerates missing markup:
// each field has an ordered chain of fallback strategies, and a container
// becomes a tool only when it has a name and at least one link.
package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/toolscout"
)

// Word bounds requested when summarizing a tool description.
const (
	// SummaryMaxWords is the longest summary requested.
	SummaryMaxWords = 50

	// SummaryMinWords is the shortest summary requested.
	SummaryMinWords = 15
)

const (
	// snippetLength bounds container HTML attached to events.
	snippetLength = 150

	// summarizeThreshold is the description word count above which a
	// summary is requested.
	summarizeThreshold = 30
)

// Ensure Extractor implements toolscout.ListingExtractor at compile time.
var _ toolscout.ListingExtractor = (*Extractor)(nil)

// containerRule finds candidate tool containers.
type containerRule struct {
	name  string
	query toolscout.Query
}

// containerRules are tried in order; the first with any match wins.
var containerRules = []containerRule{
	{name: "tool-card", query: toolscout.Query{ClassContains: []string{"tool-card"}}},
	{name: "item", query: toolscout.Query{ClassContains: []string{"item", "collection-item"}}},
}

var (
	headings = []string{"h2", "h3", "h4"}

	nameClasses        = []string{"tool-name", "tool-title", "card-title"}
	nameLinkClasses    = []string{"title", "name"}
	websiteClasses     = []string{"external-link", "website-button", "tool-website-link", "outbound", "visit-tool-button"}
	descriptionClasses = []string{"description", "tool-description", "card-text", "item-description", "tool-card-description"}
)

// Extractor extracts tools from a directory page.
type Extractor struct {
	Site Site

	// Summarizer shortens long descriptions. Nil disables summarization.
	Summarizer toolscout.Summarizer
}

// NewExtractor creates an Extractor for site.
func NewExtractor(site Site, summarizer toolscout.Summarizer) *Extractor {
	return &Extractor{Site: site, Summarizer: summarizer}
}

// Extract finds tool containers under root and extracts one tool per
// qualifying container, in document order.
func (e *Extractor) Extract(ctx context.Context, root toolscout.Node) *toolscout.Extraction {
	result := &toolscout.Extraction{}

	var containers []toolscout.Node
	for _, rule := range containerRules {
		if containers = root.Find(rule.query); len(containers) > 0 {
			result.Tally.Rule = rule.name
			break
		}
	}
	if len(containers) == 0 {
		result.Events = append(result.Events, toolscout.ExtractEvent{
			Kind:   toolscout.EventNoContainers,
			Detail: "no element matched any container rule",
		})
		return result
	}
	result.Tally.Containers = len(containers)

	for i, node := range containers {
		c := &card{index: i + 1, node: node}
		tool := e.extractCard(c)
		if tool != nil {
			e.summarize(ctx, c, tool)
			result.Tools = append(result.Tools, tool)
			result.Tally.Accepted++
			if !tool.HasWebsite() {
				result.Tally.MissingWebsite++
			}
			if !tool.HasDirectory() {
				result.Tally.MissingDirectory++
			}
			if !tool.HasDescription() {
				result.Tally.MissingDescription++
			}
		} else {
			result.Tally.Rejected++
		}
		result.Events = append(result.Events, c.events...)
	}

	return result
}

// extractCard resolves every field of c and returns nil when the container
// does not qualify as a tool.
func (e *Extractor) extractCard(c *card) *toolscout.Tool {
	c.name = c.resolve(toolscout.FieldName, e.nameChain())
	c.directory = c.resolve(toolscout.FieldDirectory, e.directoryChain())
	c.website = c.resolve(toolscout.FieldWebsite, e.websiteChain())
	c.description = c.resolve(toolscout.FieldDescription, e.descriptionChain())

	tool := &toolscout.Tool{
		Name:         c.name,
		WebsiteURL:   c.website,
		DirectoryURL: c.directory,
		Description:  c.description,
		Summary:      c.description,
	}
	if err := tool.Validate(); err != nil {
		c.event(toolscout.EventContainerRejected, "", "", toolscout.ErrorMessage(err))
		return nil
	}
	return tool
}

func (e *Extractor) summarize(ctx context.Context, c *card, tool *toolscout.Tool) {
	if e.Summarizer == nil || e.Summarizer.State() != toolscout.SummarizerReady {
		return
	}
	if toolscout.WordCount(tool.Description) <= summarizeThreshold {
		return
	}
	summary, err := e.Summarizer.Summarize(ctx, tool.Description, SummaryMaxWords, SummaryMinWords)
	if err != nil {
		c.event(toolscout.EventSummaryFailed, toolscout.FieldDescription, "", err.Error())
		return
	}
	if summary != "" {
		tool.Summary = summary
	}
}

func (e *Extractor) nameChain() []strategy {
	return []strategy{
		{name: "classed-heading", query: toolscout.Query{Tags: headings, Classes: nameClasses}, accept: textValue},
		{name: "heading", query: toolscout.Query{Tags: headings}, accept: textValue},
		{name: "classed-link", query: toolscout.Query{Tags: []string{"a"}, Classes: nameLinkClasses}, accept: textValue},
		{name: "link-text", query: toolscout.Query{Tags: []string{"a"}}, scan: true,
			accept: func(_ *card, n toolscout.Node) (string, string) { return n.Text(), "" }},
	}
}

func (e *Extractor) directoryChain() []strategy {
	internalHref := func(_ *card, n toolscout.Node) (string, string) {
		href, _ := n.Attr("href")
		if !e.Site.IsInternal(href) {
			return "", ""
		}
		return e.Site.Resolve(href), ""
	}
	return []strategy{
		{name: "container-link", self: true,
			accept: func(c *card, n toolscout.Node) (string, string) {
				if n.Tag() != "a" {
					return "", ""
				}
				return internalHref(c, n)
			}},
		{name: "internal-link", query: toolscout.Query{Tags: []string{"a"}, Attr: "href"}, scan: true, accept: internalHref},
	}
}

func (e *Extractor) websiteChain() []strategy {
	return []strategy{
		{name: "marked-link", query: toolscout.Query{Tags: []string{"a"}, Classes: websiteClasses}, exclusive: true,
			accept: func(_ *card, n toolscout.Node) (string, string) {
				href, _ := n.Attr("href")
				href = strings.TrimSpace(href)
				if !e.Site.IsExternal(href) {
					return "", fmt.Sprintf("href %q is not an external URL", href)
				}
				return href, ""
			}},
		{name: "external-link", query: toolscout.Query{Tags: []string{"a"}, Attr: "href"}, scan: true,
			accept: func(c *card, n toolscout.Node) (string, string) {
				href, _ := n.Attr("href")
				href = strings.TrimSpace(href)
				if !e.Site.IsExternal(href) || href == c.directory {
					return "", ""
				}
				return href, ""
			}},
	}
}

func (e *Extractor) descriptionChain() []strategy {
	return []strategy{
		{name: "classed-block", query: toolscout.Query{Tags: []string{"p", "div"}, Classes: descriptionClasses}, accept: textValue,
			exclusive: true, resume: "container-text"},
		{name: "paragraph", query: toolscout.Query{Tags: []string{"p"}}, scan: true,
			accept: func(_ *card, n toolscout.Node) (string, string) {
				if text := n.Text(); longerThan(text, 20) {
					return text, ""
				}
				return "", ""
			}},
		{name: "container-text", self: true,
			accept: func(c *card, n toolscout.Node) (string, string) {
				if c.name == "" {
					return "", ""
				}
				text := n.Text()
				if strings.HasPrefix(text, c.name) {
					text = strings.TrimSpace(text[len(c.name):])
				}
				if !longerThan(text, 30) || text == c.directory {
					return "", ""
				}
				return text, ""
			}},
	}
}
