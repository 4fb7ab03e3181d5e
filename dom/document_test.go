package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/scrollkit"
)

const page = `<!DOCTYPE html>
<html><head><title>t</title></head>
<body>
	<section id="hero" data-scroll-parent data-scroll-Trigger="0.5">
		<h1 class="title" data-scroll-style.opacity-0="0" data-scroll-style.opacity-1="1">Hello</h1>
		text between
		<p>second</p>
	</section>
</body></html>`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := ParseString(s)
	require.NoError(t, err)
	return doc
}

func TestParseRootAndBody(t *testing.T) {
	doc := mustParse(t, page)

	require.NotNil(t, doc.HTML())
	require.NotNil(t, doc.BodyElement())
	assert.Equal(t, "html", doc.HTML().Tag())
	assert.Equal(t, "body", doc.BodyElement().Tag())
	assert.Nil(t, doc.Root().ParentElement(), "html has no parent element")
	assert.Equal(t, doc.Root(), doc.Body().ParentElement())
}

func TestParseFragmentStillHasBody(t *testing.T) {
	doc := mustParse(t, `<div>bare</div>`)
	children := doc.Body().Children()
	require.Len(t, children, 1)
	assert.Equal(t, "div", children[0].(*Element).Tag())
}

func TestChildrenSkipText(t *testing.T) {
	doc := mustParse(t, page)
	hero, err := doc.QueryOne(`//section[@id='hero']`)
	require.NoError(t, err)
	require.NotNil(t, hero)

	children := hero.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "h1", children[0].(*Element).Tag())
	assert.Equal(t, "p", children[1].(*Element).Tag())
}

func TestAttributesAreLowerCased(t *testing.T) {
	doc := mustParse(t, page)
	hero, _ := doc.QueryOne(`//section`)

	var names []string
	for _, a := range hero.Attributes() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"id", "data-scroll-parent", "data-scroll-trigger"}, names)
	assert.Equal(t, "0.5", hero.Attr("data-scroll-trigger"))
}

func TestQueryInvalidExpression(t *testing.T) {
	doc := mustParse(t, page)
	_, err := doc.Query(`//section[`)
	assert.Error(t, err)
}

func TestQueryNoMatch(t *testing.T) {
	doc := mustParse(t, page)
	el, err := doc.QueryOne(`//article`)
	require.NoError(t, err)
	assert.Nil(t, el)
}

func TestSetScrollYClamps(t *testing.T) {
	doc := mustParse(t, page)
	doc.SetScrollY(-20)
	assert.Equal(t, 0.0, doc.ScrollY())

	// No boxes: only the lower bound applies.
	doc.SetScrollY(5000)
	assert.Equal(t, 5000.0, doc.PageYOffset())

	doc.HTML().SetBox(0, 1000)
	doc.SetViewport(800, 600)
	doc.SetScrollY(5000)
	assert.Equal(t, 400.0, doc.ScrollY())
}

func TestRootMetricsFollowViewport(t *testing.T) {
	doc := mustParse(t, page)
	doc.SetViewport(320, 480)
	doc.SetScrollY(30)

	m := doc.HTML().Metrics()
	assert.Equal(t, 320.0, m.ClientWidth)
	assert.Equal(t, 480.0, m.ClientHeight)
	assert.Equal(t, 30.0, m.ScrollTop)
	assert.False(t, m.Hidden())
	assert.Equal(t, 480.0, doc.ViewportHeight())
}

func TestElementsDefaultHidden(t *testing.T) {
	doc := mustParse(t, page)
	hero, _ := doc.QueryOne(`//section`)
	assert.True(t, hero.Metrics().Hidden())

	hero.SetBox(100, 300)
	m := hero.Metrics()
	assert.False(t, m.Hidden())
	assert.False(t, m.Overflows())
	assert.Equal(t, 100.0, m.OffsetTop)
}

func TestRenderReflectsWrites(t *testing.T) {
	doc := mustParse(t, page)
	h1, _ := doc.QueryOne(`//h1`)
	h1.Style().SetProperty("opacity", "0.5")
	h1.SetProperty("className", "title shown")

	out := doc.String()
	assert.Contains(t, out, `style="opacity: 0.5;"`)
	assert.Contains(t, out, `class="title shown"`)

	var b strings.Builder
	require.NoError(t, doc.WriteSnapshot(&b))
	assert.Equal(t, out, b.String())
}

func TestDocumentImplementsHostInterfaces(t *testing.T) {
	doc := mustParse(t, page)
	var _ scrollkit.Document = doc
	var _ scrollkit.ScrollTarget = doc
	var _ scrollkit.Snapshotter = doc
	var _ scrollkit.Element = doc.HTML()
	var _ scrollkit.Invoker = doc.HTML()
	var _ scrollkit.Invoker = NewObject()
}
