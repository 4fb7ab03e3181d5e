package scrollkit

import (
	"io"
	"strings"
)

// fakeElement is a minimal Element for tests.
type fakeElement struct {
	tag      string
	parent   *fakeElement
	children []*fakeElement
	attrs    []Attribute
	metrics  Metrics
	props    map[string]string
	holders  map[string]*fakeElement
	calls    []fakeCall
}

type fakeCall struct {
	name string
	pos  Position
	args []string
}

func newFakeElement(tag string, attrs ...string) *fakeElement {
	el := &fakeElement{tag: tag, props: make(map[string]string)}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.attrs = append(el.attrs, Attribute{Name: attrs[i], Value: attrs[i+1]})
	}
	return el
}

// add appends a new child and returns it.
func (e *fakeElement) add(tag string, attrs ...string) *fakeElement {
	c := newFakeElement(tag, attrs...)
	c.parent = e
	e.children = append(e.children, c)
	return c
}

// holder returns the nested target name, creating it.
func (e *fakeElement) holder(name string) *fakeElement {
	if e.holders == nil {
		e.holders = make(map[string]*fakeElement)
	}
	h := e.holders[name]
	if h == nil {
		h = newFakeElement(name)
		e.holders[name] = h
	}
	return h
}

// box makes the element visible at top with the given height.
func (e *fakeElement) box(top, height float64) *fakeElement {
	e.metrics = Metrics{
		OffsetTop:    top,
		OffsetHeight: height,
		ClientWidth:  100,
		ClientHeight: height,
		ScrollWidth:  100,
		ScrollHeight: height,
	}
	return e
}

func (e *fakeElement) Property(name string) Target {
	if h := e.holders[name]; h != nil {
		return h
	}
	return nil
}

func (e *fakeElement) SetProperty(name, value string) {
	e.props[name] = value
}

func (e *fakeElement) Invoke(name string, pos Position, args []string) {
	e.calls = append(e.calls, fakeCall{name: name, pos: pos, args: args})
}

func (e *fakeElement) ParentElement() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *fakeElement) Children() []Element {
	out := make([]Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *fakeElement) Attributes() []Attribute {
	return e.attrs
}

func (e *fakeElement) Metrics() Metrics {
	return e.metrics
}

// fakeDocument is a Document with a settable page offset.
type fakeDocument struct {
	root     *fakeElement
	body     *fakeElement
	pageY    float64
	viewport float64
	snapshot string
}

// newFakeDocument returns a document whose root spans height pixels under a
// viewport of the given height.
func newFakeDocument(viewport, height float64) *fakeDocument {
	root := newFakeElement("html").box(0, height)
	root.metrics.ClientHeight = viewport
	root.metrics.ScrollHeight = height
	body := root.add("body")
	return &fakeDocument{root: root, body: body, viewport: viewport, snapshot: "<html></html>"}
}

func (d *fakeDocument) Root() Element           { return d.root }
func (d *fakeDocument) Body() Element           { return d.body }
func (d *fakeDocument) PageYOffset() float64    { return d.pageY }
func (d *fakeDocument) ViewportHeight() float64 { return d.viewport }
func (d *fakeDocument) ScrollY() float64        { return d.pageY }
func (d *fakeDocument) SetScrollY(y float64)    { d.pageY = y }

func (d *fakeDocument) WriteSnapshot(w io.Writer) error {
	_, err := io.Copy(w, strings.NewReader(d.snapshot))
	return err
}

// recordingSink collects every applied instruction.
type recordingSink struct {
	got []Instruction
}

func (s *recordingSink) EmitInstruction(in Instruction) {
	s.got = append(s.got, in)
}

func frames(pairs ...any) []Keyframe {
	var out []Keyframe
	for i := 0; i+1 < len(pairs); i += 2 {
		var pos Position
		switch p := pairs[i].(type) {
		case float64:
			pos = At(p)
		case int:
			pos = At(float64(p))
		case Position:
			pos = p
		}
		out = append(out, Keyframe{Position: pos, Template: pairs[i+1].(string)})
	}
	return out
}
