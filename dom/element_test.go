package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/scrollkit"
)

func TestPropertyResolution(t *testing.T) {
	doc := mustParse(t, `<div id="a"></div>`)
	el, _ := doc.QueryOne(`//div`)

	require.NotNil(t, el.Property("style"))
	assert.Nil(t, el.Property("dataset"), "unknown holder must be untyped nil")

	canvas := el.Object("canvas")
	assert.Equal(t, scrollkit.Target(canvas), el.Property("canvas"))

	assert.Nil(t, canvas.Property("ctx"))
	ctx := canvas.Child("ctx")
	assert.Equal(t, scrollkit.Target(ctx), canvas.Property("ctx"))
}

func TestSetPropertyMarkup(t *testing.T) {
	doc := mustParse(t, `<div id="a"><span>old</span></div>`)
	el, _ := doc.QueryOne(`//div`)
	span, _ := doc.QueryOne(`//span`)
	require.NotNil(t, doc.Element(span.Node()))

	el.SetProperty("textContent", "new")
	assert.Equal(t, "new", el.Text())
	assert.Empty(t, el.Children())
	assert.Nil(t, doc.Element(span.Node()), "detached elements are forgotten")

	el.SetProperty("id", "b")
	assert.Equal(t, "b", el.Attr("id"))

	el.SetProperty("volume", "0.3")
	assert.Equal(t, "0.3", el.Prop("volume"))
}

func TestScrollTopOnContainer(t *testing.T) {
	doc := mustParse(t, `<div class="list"></div>`)
	el, _ := doc.QueryOne(`//div`)
	el.SetMetrics(scrollkit.Metrics{ClientWidth: 100, ClientHeight: 100, ScrollWidth: 100, ScrollHeight: 400})

	el.SetProperty("scrollTop", "150")
	assert.Equal(t, 150.0, el.Metrics().ScrollTop)

	el.SetProperty("scrollTop", "1000")
	assert.Equal(t, 300.0, el.Metrics().ScrollTop)

	el.SetProperty("scrollTop", "nope")
	assert.Equal(t, 300.0, el.Metrics().ScrollTop)
}

func TestInvokeBuiltins(t *testing.T) {
	doc := mustParse(t, `<div></div>`)
	el, _ := doc.QueryOne(`//div`)

	el.Invoke("setAttribute", scrollkit.At(0.5), []string{"aria-hidden", "true"})
	assert.Equal(t, "true", el.Attr("aria-hidden"))

	el.Invoke("removeAttribute", scrollkit.At(0.5), []string{"aria-hidden"})
	assert.False(t, el.HasAttr("aria-hidden"))

	// Missing arguments are ignored.
	el.Invoke("setAttribute", scrollkit.At(0.5), []string{"x"})
	assert.False(t, el.HasAttr("x"))

	doc.BodyElement().Invoke("scrollTo", scrollkit.At(1), []string{"0", "250"})
	assert.Equal(t, 250.0, doc.ScrollY())
}

func TestInvokeHandler(t *testing.T) {
	doc := mustParse(t, `<video></video>`)
	el, _ := doc.QueryOne(`//video`)

	var gotPos scrollkit.Position
	var gotArgs []string
	el.Handle("seek", func(pos scrollkit.Position, args []string) {
		gotPos, gotArgs = pos, args
	})
	el.Invoke("seek", scrollkit.After, []string{"12"})
	assert.Equal(t, scrollkit.After, gotPos)
	assert.Equal(t, []string{"12"}, gotArgs)

	el.Invoke("unknown", scrollkit.At(0), nil)
}

func TestSetAttrStyleResyncsStyle(t *testing.T) {
	doc := mustParse(t, `<div style="color: red"></div>`)
	el, _ := doc.QueryOne(`//div`)
	assert.Equal(t, "red", el.Style().Get("color"))

	el.SetAttr("style", "opacity: 1; color: blue")
	assert.Equal(t, "blue", el.Style().Get("color"))
	assert.Equal(t, "1", el.Style().Get("opacity"))
}
