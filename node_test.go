package toolscout_test

import (
	"testing"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/mock"
	"github.com/stretchr/testify/assert"
)

func TestQuery_Selector(t *testing.T) {
	t.Parallel()

	t.Run("combines tags and class tokens", func(t *testing.T) {
		t.Parallel()

		q := toolscout.Query{Tags: []string{"h2", "h3"}, Classes: []string{"tool-name", "card-title"}}

		assert.Equal(t, "h2.tool-name, h2.card-title, h3.tool-name, h3.card-title", q.Selector())
	})

	t.Run("matches any element by class substring", func(t *testing.T) {
		t.Parallel()

		q := toolscout.Query{ClassContains: []string{"item", "collection-item"}}

		assert.Equal(t, `*[class*="item"], *[class*="collection-item"]`, q.Selector())
	})

	t.Run("appends required attribute", func(t *testing.T) {
		t.Parallel()

		q := toolscout.Query{Tags: []string{"a"}, Attr: "href"}

		assert.Equal(t, "a[href]", q.Selector())
	})

	t.Run("empty query matches every element", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "*", toolscout.Query{}.Selector())
	})
}

func TestFirstMatching(t *testing.T) {
	t.Parallel()

	text := func(s string) *mock.Node {
		return &mock.Node{TextFn: func() string { return s }}
	}
	root := &mock.Node{
		FindFn: func(_ toolscout.Query) []toolscout.Node {
			return []toolscout.Node{text(""), text("second"), text("third")}
		},
	}

	t.Run("returns the first match without a filter", func(t *testing.T) {
		t.Parallel()

		n, ok := toolscout.FirstMatching(root, toolscout.Query{}, nil)

		assert.True(t, ok)
		assert.Equal(t, "", n.Text())
	})

	t.Run("skips matches the filter rejects", func(t *testing.T) {
		t.Parallel()

		n, ok := toolscout.FirstMatching(root, toolscout.Query{}, func(n toolscout.Node) bool {
			return n.Text() != ""
		})

		assert.True(t, ok)
		assert.Equal(t, "second", n.Text())
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		_, ok := toolscout.FirstMatching(&mock.Node{}, toolscout.Query{}, nil)

		assert.False(t, ok)
	})
}
