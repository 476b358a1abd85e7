package goquery_test

import (
	"testing"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Find(t *testing.T) {
	t.Parallel()

	t.Run("returns descendants in document order", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewDocument(`<div>
<h3 class="card-title">First</h3>
<h2 class="tool-name">Second</h2>
<h4>Third</h4>
</div>`)
		require.NoError(t, err)

		nodes := root.Find(toolscout.Query{Tags: []string{"h2", "h3", "h4"}})

		require.Len(t, nodes, 3)
		assert.Equal(t, "First", nodes[0].Text())
		assert.Equal(t, "Second", nodes[1].Text())
		assert.Equal(t, "Third", nodes[2].Text())
	})

	t.Run("matches class tokens not substrings", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewDocument(`<a class="title-link">A</a><a class="big title">B</a>`)
		require.NoError(t, err)

		nodes := root.Find(toolscout.Query{Tags: []string{"a"}, Classes: []string{"title"}})

		require.Len(t, nodes, 1)
		assert.Equal(t, "B", nodes[0].Text())
	})

	t.Run("matches class substrings", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewDocument(`<div class="w-dyn-item">A</div><div class="other">B</div>`)
		require.NoError(t, err)

		nodes := root.Find(toolscout.Query{ClassContains: []string{"item"}})

		require.Len(t, nodes, 1)
		assert.Equal(t, "div", nodes[0].Tag())
	})

	t.Run("excludes the node itself", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewDocument(`<a href="/x"><span>in</span></a>`)
		require.NoError(t, err)
		links := root.Find(toolscout.Query{Tags: []string{"a"}})
		require.Len(t, links, 1)

		assert.Empty(t, links[0].Find(toolscout.Query{Tags: []string{"a"}}))
	})

	t.Run("requires attribute when set", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewDocument(`<a name="top">Top</a><a href="/tool/x">X</a>`)
		require.NoError(t, err)

		nodes := root.Find(toolscout.Query{Tags: []string{"a"}, Attr: "href"})

		require.Len(t, nodes, 1)
		href, ok := nodes[0].Attr("href")
		assert.True(t, ok)
		assert.Equal(t, "/tool/x", href)
	})
}

func TestNode_Text(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace and separates text nodes", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewDocument("<p>  Hello\n\t<b>big</b><i>world</i>  </p>")
		require.NoError(t, err)

		nodes := root.Find(toolscout.Query{Tags: []string{"p"}})

		require.Len(t, nodes, 1)
		assert.Equal(t, "Hello big world", nodes[0].Text())
	})

	t.Run("skips script and style", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.NewDocument("<div>Visible<script>var x = 1;</script><style>p{}</style></div>")
		require.NoError(t, err)

		nodes := root.Find(toolscout.Query{Tags: []string{"div"}})

		require.Len(t, nodes, 1)
		assert.Equal(t, "Visible", nodes[0].Text())
	})
}

func TestNode_Snippet(t *testing.T) {
	t.Parallel()

	root, err := goquery.NewDocument(`<div class="tool-card">Some long content here</div>`)
	require.NoError(t, err)
	nodes := root.Find(toolscout.Query{ClassContains: []string{"tool-card"}})
	require.Len(t, nodes, 1)

	assert.Equal(t, `<div class="tool-card">Some long content here</div>`, nodes[0].Snippet(200))
	assert.Equal(t, `<div class="...`, nodes[0].Snippet(12))
}
