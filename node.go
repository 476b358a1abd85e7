package toolscout

import "strings"

// Node is a read-only element of a parsed HTML document.
// Implementations wrap a concrete DOM (see goquery.Node).
type Node interface {
	// Tag returns the lowercase element name (e.g., "a", "h3").
	Tag() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the element's text content with whitespace collapsed
	// to single spaces and trimmed.
	Text() string

	// Find returns the descendants matching q in document order.
	// The node itself is never included.
	Find(q Query) []Node

	// Snippet returns up to n bytes of the element's outer HTML for diagnostics.
	Snippet(n int) string
}

// Query describes an element match over tag names and class markers.
// Within a field, any listed value matches; fields are combined with AND.
type Query struct {
	// Tags restricts matches to these element names. Empty matches any element.
	Tags []string

	// Classes matches elements carrying any of these class tokens.
	Classes []string

	// ClassContains matches elements whose class attribute contains any of
	// these substrings.
	ClassContains []string

	// Attr requires the attribute to be present.
	Attr string
}

// Selector returns the CSS selector group equivalent to q.
func (q Query) Selector() string {
	tags := q.Tags
	if len(tags) == 0 {
		tags = []string{"*"}
	}

	var markers []string
	for _, c := range q.Classes {
		markers = append(markers, "."+c)
	}
	for _, c := range q.ClassContains {
		markers = append(markers, `[class*="`+c+`"]`)
	}
	if len(markers) == 0 {
		markers = []string{""}
	}

	attr := ""
	if q.Attr != "" {
		attr = "[" + q.Attr + "]"
	}

	parts := make([]string, 0, len(tags)*len(markers))
	for _, tag := range tags {
		for _, m := range markers {
			parts = append(parts, tag+m+attr)
		}
	}
	return strings.Join(parts, ", ")
}

// FirstMatching returns the first descendant of n matching q for which
// accept returns true. A nil accept takes the first match.
func FirstMatching(n Node, q Query, accept func(Node) bool) (Node, bool) {
	for _, m := range n.Find(q) {
		if accept == nil || accept(m) {
			return m, true
		}
	}
	return nil, false
}
