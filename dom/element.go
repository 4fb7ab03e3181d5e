package dom

import (
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/phanxgames/scrollkit"
)

// Handler receives a method-style keyframe call ("data-scroll-pulse()").
type Handler func(pos scrollkit.Position, args []string)

// Element wraps an element node. It implements scrollkit.Element and
// scrollkit.Invoker.
type Element struct {
	doc     *Document
	node    *html.Node
	metrics scrollkit.Metrics

	style    *Style
	props    map[string]string
	objects  map[string]*Object
	handlers map[string]Handler
}

// Node returns the wrapped node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// ParentElement returns the parent element, or nil for <html>.
func (e *Element) ParentElement() scrollkit.Element {
	p := e.parent()
	if p == nil {
		return nil
	}
	return p
}

func (e *Element) parent() *Element {
	if e.node.Parent == nil {
		return nil
	}
	return e.doc.elements[e.node.Parent]
}

// Children returns the element children in document order.
func (e *Element) Children() []scrollkit.Element {
	var out []scrollkit.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if el := e.doc.elements[c]; el != nil {
			out = append(out, el)
		}
	}
	return out
}

// Attributes returns the attributes in document order.
func (e *Element) Attributes() []scrollkit.Attribute {
	out := make([]scrollkit.Attribute, len(e.node.Attr))
	for i, a := range e.node.Attr {
		out[i] = scrollkit.Attribute{Name: a.Key, Value: a.Val}
	}
	return out
}

// Attr returns the value of the attribute name, or "".
func (e *Element) Attr(name string) string {
	return htmlquery.SelectAttr(e.node, name)
}

// HasAttr reports whether the attribute name is present.
func (e *Element) HasAttr(name string) bool {
	return htmlquery.ExistsAttr(e.node, name)
}

// SetAttr sets or adds the attribute name.
func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	setAttr(e.node, name, value)
	e.attrChanged(name)
}

// RemoveAttr deletes the attribute name.
func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	if removeAttr(e.node, name) {
		e.attrChanged(name)
	}
}

func setAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(n *html.Node, name string) bool {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return true
		}
	}
	return false
}

// attrChanged keeps the cached style in sync with the style attribute.
func (e *Element) attrChanged(name string) {
	if name == "style" && e.style != nil {
		e.style.parse(e.Attr("style"))
	}
}

// Text returns the text content of the subtree.
func (e *Element) Text() string {
	return htmlquery.InnerText(e.node)
}

// SetText replaces the children of the element with a single text node.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		e.doc.unwrap(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// OuterHTML returns the markup of the element.
func (e *Element) OuterHTML() string {
	return htmlquery.OutputHTML(e.node, true)
}

// Style returns the inline style of the element.
func (e *Element) Style() *Style {
	if e.style == nil {
		e.style = &Style{el: e}
		e.style.parse(e.Attr("style"))
	}
	return e.style
}

// Metrics returns the layout box. The <html> element reports the viewport
// as its client area, the page offset as its scroll offset and, without a
// box of its own, the content height as its height.
func (e *Element) Metrics() scrollkit.Metrics {
	m := e.metrics
	if e.doc.isRoot(e.node) {
		m.ClientWidth = e.doc.viewportWidth
		m.ClientHeight = e.doc.viewportHeight
		m.ScrollTop = e.doc.scrollY
		m.ScrollWidth = e.doc.viewportWidth
		m.ScrollHeight = max(e.doc.ContentHeight(), e.doc.viewportHeight)
		if m.OffsetHeight == 0 {
			m.OffsetHeight = e.doc.ContentHeight()
		}
	}
	return m
}

// SetMetrics replaces the layout box.
func (e *Element) SetMetrics(m scrollkit.Metrics) {
	e.metrics = m
}

// SetBox places a visible, non-scrolling box at top with the given height
// and the viewport width.
func (e *Element) SetBox(top, height float64) {
	w := e.doc.viewportWidth
	e.metrics = scrollkit.Metrics{
		OffsetTop:    top,
		OffsetHeight: height,
		ClientWidth:  w,
		ClientHeight: height,
		ScrollWidth:  w,
		ScrollHeight: height,
	}
}

// Prop returns a value assigned through SetProperty that has no markup
// counterpart.
func (e *Element) Prop(name string) string {
	return e.props[name]
}

// Object returns the property holder reachable as name, creating it.
// Keyframes address it as "data-scroll-<name>.<prop>".
func (e *Element) Object(name string) *Object {
	if e.objects == nil {
		e.objects = make(map[string]*Object)
	}
	obj := e.objects[name]
	if obj == nil {
		obj = NewObject()
		e.objects[name] = obj
	}
	return obj
}

// Handle registers fn as the method name. Handlers take precedence over the
// built-in methods.
func (e *Element) Handle(name string, fn Handler) {
	if e.handlers == nil {
		e.handlers = make(map[string]Handler)
	}
	e.handlers[name] = fn
}

// Property resolves "style" and holders created with Object.
func (e *Element) Property(name string) scrollkit.Target {
	if name == "style" {
		return e.Style()
	}
	if obj := e.objects[name]; obj != nil {
		return obj
	}
	return nil
}

// SetProperty assigns name. className, id and textContent write markup,
// scrollTop moves the element's (or the page's) scroll offset, anything else
// is kept as a plain property.
func (e *Element) SetProperty(name, value string) {
	switch name {
	case "className":
		e.SetAttr("class", value)
	case "id":
		e.SetAttr("id", value)
	case "textContent", "innerText":
		e.SetText(value)
	case "scrollTop":
		if v, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			e.scrollTo(v)
		}
	default:
		if e.props == nil {
			e.props = make(map[string]string)
		}
		e.props[name] = value
	}
}

// Invoke runs a method-style keyframe: a registered Handler, or one of
// setAttribute(name, value), removeAttribute(name), scrollTo(x, y) and
// scrollTo(y). Unknown methods are ignored.
func (e *Element) Invoke(name string, pos scrollkit.Position, args []string) {
	if fn := e.handlers[name]; fn != nil {
		fn(pos, args)
		return
	}
	switch name {
	case "setAttribute":
		if len(args) >= 2 {
			e.SetAttr(args[0], args[1])
		}
	case "removeAttribute":
		if len(args) >= 1 {
			e.RemoveAttr(args[0])
		}
	case "scrollTo":
		if len(args) == 0 {
			return
		}
		if v, err := strconv.ParseFloat(args[len(args)-1], 64); err == nil {
			e.scrollTo(v)
		}
	}
}

func (e *Element) scrollTo(y float64) {
	if e.doc.isRoot(e.node) || e == e.doc.body {
		e.doc.SetScrollY(y)
		return
	}
	maxTop := max(e.metrics.ScrollHeight-e.metrics.ClientHeight, 0)
	e.metrics.ScrollTop = min(max(y, 0), maxTop)
}
