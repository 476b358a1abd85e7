package mock

import "github.com/fwojciec/toolscout"

var _ toolscout.Node = (*Node)(nil)

// Node is a mock implementation of toolscout.Node. Unset functions
// behave like an empty element.
type Node struct {
	TagFn     func() string
	AttrFn    func(name string) (string, bool)
	TextFn    func() string
	FindFn    func(q toolscout.Query) []toolscout.Node
	SnippetFn func(n int) string
}

func (m *Node) Tag() string {
	if m.TagFn == nil {
		return ""
	}
	return m.TagFn()
}

func (m *Node) Attr(name string) (string, bool) {
	if m.AttrFn == nil {
		return "", false
	}
	return m.AttrFn(name)
}

func (m *Node) Text() string {
	if m.TextFn == nil {
		return ""
	}
	return m.TextFn()
}

func (m *Node) Find(q toolscout.Query) []toolscout.Node {
	if m.FindFn == nil {
		return nil
	}
	return m.FindFn(q)
}

func (m *Node) Snippet(n int) string {
	if m.SnippetFn == nil {
		return ""
	}
	return m.SnippetFn(n)
}
