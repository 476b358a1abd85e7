package listing

import (
	"unicode/utf8"

	"github.com/fwojciec/toolscout"
)

// strategy is one step of a field's fallback chain.
type strategy struct {
	name string

	// self makes the container itself the only candidate.
	self bool

	// query selects candidates among the container's descendants.
	query toolscout.Query

	// scan considers every match in document order; otherwise only the
	// first match is inspected.
	scan bool

	// accept returns the field value for a candidate, or an empty value and
	// a reason when the candidate is rejected. An empty reason means the
	// candidate simply does not apply.
	accept func(c *card, n toolscout.Node) (value, reason string)

	// exclusive strategies own the field once they match an element: when
	// no candidate yields a value, the chain continues at resume, or ends
	// when resume is empty.
	exclusive bool
	resume    string
}

// card holds the fields resolved so far for one container.
type card struct {
	index int
	node  toolscout.Node

	name        string
	directory   string
	website     string
	description string

	events []toolscout.ExtractEvent
}

func (c *card) event(kind toolscout.EventKind, field toolscout.Field, strategy, detail string) {
	c.events = append(c.events, toolscout.ExtractEvent{
		Kind:      kind,
		Container: c.index,
		Field:     field,
		Strategy:  strategy,
		Detail:    detail,
		Snippet:   c.node.Snippet(snippetLength),
	})
}

// resolve walks chain until a strategy yields a value. Rejected candidates
// and an unresolved field are recorded as events.
func (c *card) resolve(field toolscout.Field, chain []strategy) string {
	detail := "no strategy matched"
	for i := 0; i < len(chain); i++ {
		s := chain[i]
		var candidates []toolscout.Node
		switch {
		case s.self:
			candidates = []toolscout.Node{c.node}
		case s.scan:
			candidates = c.node.Find(s.query)
		default:
			if n, ok := toolscout.FirstMatching(c.node, s.query, nil); ok {
				candidates = []toolscout.Node{n}
			}
		}
		for _, n := range candidates {
			value, reason := s.accept(c, n)
			if value != "" {
				return value
			}
			if reason != "" {
				c.event(toolscout.EventCandidateRejected, field, s.name, reason)
			}
		}
		if !s.exclusive || len(candidates) == 0 {
			continue
		}
		next := indexOf(chain, s.resume)
		if next < 0 {
			detail = "discarded " + s.name + " candidate"
			break
		}
		i = next - 1
	}
	c.event(toolscout.EventFieldMiss, field, "", detail)
	return ""
}

// indexOf returns the position of the strategy called name, or -1.
func indexOf(chain []strategy, name string) int {
	if name == "" {
		return -1
	}
	for i, s := range chain {
		if s.name == name {
			return i
		}
	}
	return -1
}

func textValue(_ *card, n toolscout.Node) (string, string) {
	if text := n.Text(); text != "" {
		return text, ""
	}
	return "", "empty text"
}

func longerThan(s string, n int) bool {
	return utf8.RuneCountInString(s) > n
}
