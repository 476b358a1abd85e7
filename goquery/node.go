package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/toolscout"
	"golang.org/x/net/html"
)

// Ensure Node implements toolscout.Node at compile time.
var _ toolscout.Node = (*Node)(nil)

// Node adapts a single-element goquery selection to toolscout.Node.
type Node struct {
	sel *goquery.Selection
}

// NewNode wraps the first element of sel.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel.First()}
}

// NewDocument parses html and returns its root node.
func NewDocument(rawHTML string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, toolscout.Errorf(toolscout.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewNode(doc.Selection), nil
}

// Tag returns the lowercase element name.
func (n *Node) Tag() string {
	return strings.ToLower(goquery.NodeName(n.sel))
}

// Attr returns the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the element's text with whitespace collapsed.
// Text nodes are joined by a space, so "<b>a</b><i>b</i>" yields "a b".
func (n *Node) Text() string {
	return nodeText(n.sel)
}

// Find returns descendants matching q in document order.
func (n *Node) Find(q toolscout.Query) []toolscout.Node {
	m, err := cascadia.Compile(q.Selector())
	if err != nil {
		return nil
	}
	var nodes []toolscout.Node
	n.sel.FindMatcher(m).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// Snippet returns up to limit bytes of outer HTML.
func (n *Node) Snippet(limit int) string {
	out, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return ""
	}
	if len(out) <= limit {
		return out
	}
	cut := limit
	for cut > 0 && !isRuneStart(out[cut]) {
		cut--
	}
	return out[:cut] + "..."
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// nodeText collects the text nodes under sel, skipping script and style
// contents, and joins their words with single spaces.
func nodeText(sel *goquery.Selection) string {
	var words []string
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		switch h.Type {
		case html.TextNode:
			words = append(words, strings.Fields(h.Data)...)
			return
		case html.ElementNode:
			if h.Data == "script" || h.Data == "style" {
				return
			}
		case html.CommentNode:
			return
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, h := range sel.Nodes {
		walk(h)
	}
	return strings.Join(words, " ")
}
