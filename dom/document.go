// Package dom is a small in-memory document for the scrollkit engine.
//
// Markup is parsed with golang.org/x/net/html. Layout is not computed: every
// element carries a box set by the host, usually from a YAML layout file
// (see LoadLayout). Writes made by the engine go back into the node tree, so
// Render prints the animated state of the page.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/phanxgames/scrollkit"
)

// Default viewport size, in CSS pixels.
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

// Document wraps a parsed node tree. It implements scrollkit.Document,
// scrollkit.ScrollTarget and scrollkit.Snapshotter.
type Document struct {
	node     *html.Node // the DocumentNode
	root     *Element
	body     *Element
	elements map[*html.Node]*Element

	scrollY        float64
	viewportWidth  float64
	viewportHeight float64
}

// Parse reads HTML from r. The parser always produces <html>, <head> and
// <body>, so Root and Body are never nil.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &Document{
		node:           node,
		elements:       make(map[*html.Node]*Element),
		viewportWidth:  DefaultViewportWidth,
		viewportHeight: DefaultViewportHeight,
	}
	d.wrap(node)
	if n := htmlquery.FindOne(node, "/html"); n != nil {
		d.root = d.elements[n]
	}
	if n := htmlquery.FindOne(node, "/html/body"); n != nil {
		d.body = d.elements[n]
	}
	if d.root == nil || d.body == nil {
		return nil, fmt.Errorf("parse html: missing html or body element")
	}
	return d, nil
}

// ParseString is Parse for an in-memory string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// wrap creates an Element for every element node under n.
func (d *Document) wrap(n *html.Node) {
	if n.Type == html.ElementNode {
		if _, ok := d.elements[n]; !ok {
			d.elements[n] = &Element{doc: d, node: n}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.wrap(c)
	}
}

// unwrap forgets the elements under n after it left the tree.
func (d *Document) unwrap(n *html.Node) {
	delete(d.elements, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.unwrap(c)
	}
}

// Root returns the <html> element.
func (d *Document) Root() scrollkit.Element {
	return d.root
}

// Body returns the <body> element.
func (d *Document) Body() scrollkit.Element {
	return d.body
}

// HTML returns the <html> element with its concrete type.
func (d *Document) HTML() *Element {
	return d.root
}

// BodyElement returns the <body> element with its concrete type.
func (d *Document) BodyElement() *Element {
	return d.body
}

// Element returns the wrapper of n, or nil when n is not an element of d.
func (d *Document) Element(n *html.Node) *Element {
	return d.elements[n]
}

// Query returns the elements matching the XPath expression expr.
func (d *Document) Query(expr string) ([]*Element, error) {
	nodes, err := htmlquery.QueryAll(d.node, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if el := d.elements[n]; el != nil {
			out = append(out, el)
		}
	}
	return out, nil
}

// QueryOne returns the first element matching expr, or nil.
func (d *Document) QueryOne(expr string) (*Element, error) {
	n, err := htmlquery.Query(d.node, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	if n == nil {
		return nil, nil
	}
	return d.elements[n], nil
}

// PageYOffset returns the vertical scroll offset of the viewport.
func (d *Document) PageYOffset() float64 {
	return d.scrollY
}

// ScrollY is PageYOffset; it satisfies scrollkit.ScrollTarget.
func (d *Document) ScrollY() float64 {
	return d.scrollY
}

// SetScrollY scrolls the viewport to y, clamped to the scrollable range.
// Without a known content height only negative offsets are clamped.
func (d *Document) SetScrollY(y float64) {
	y = max(y, 0)
	if h := d.ContentHeight(); h > 0 {
		y = min(y, max(h-d.viewportHeight, 0))
	}
	d.scrollY = y
}

// ViewportHeight returns the client height of the document element.
func (d *Document) ViewportHeight() float64 {
	return d.viewportHeight
}

// ViewportWidth returns the client width of the document element.
func (d *Document) ViewportWidth() float64 {
	return d.viewportWidth
}

// SetViewport resizes the viewport. Non-positive sizes are ignored.
func (d *Document) SetViewport(width, height float64) {
	if width > 0 {
		d.viewportWidth = width
	}
	if height > 0 {
		d.viewportHeight = height
	}
}

// SetViewportHeight changes only the viewport height.
func (d *Document) SetViewportHeight(height float64) {
	d.SetViewport(0, height)
}

// ContentHeight returns the height of the document: the <html> box when it
// has one, otherwise the lowest edge of any element box.
func (d *Document) ContentHeight() float64 {
	if h := d.root.metrics.OffsetHeight; h > 0 {
		return h
	}
	var bottom float64
	for _, el := range d.elements {
		if b := el.metrics.OffsetTop + el.metrics.OffsetHeight; b > bottom {
			bottom = b
		}
	}
	return bottom
}

// Render writes the current markup to w.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.node); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// WriteSnapshot is Render; it satisfies scrollkit.Snapshotter.
func (d *Document) WriteSnapshot(w io.Writer) error {
	return d.Render(w)
}

// String returns the current markup.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// isRoot reports whether n is the <html> element.
func (d *Document) isRoot(n *html.Node) bool {
	return n.DataAtom == atom.Html && n.Parent == d.node
}
