package scrollkit

// Child is a member of a ScrollParent: a *ScrollObject or a nested
// *ScrollParent. Element identifies the child; a parent never holds two
// children for the same element.
type Child interface {
	Element() Element
	renderAt(pos Position, out []Instruction, force bool) []Instruction
}

// ScrollParent tracks one scrollable region. It converts the region's scroll
// offset into a Position and fans it out to its children.
type ScrollParent struct {
	// Trigger is the activation line as a ratio of the viewport height.
	Trigger float64
	// TopOffset and BottomOffset widen the tracked box, in pixels.
	TopOffset    float64
	BottomOffset float64

	el        Element
	doc       Document
	parent    *ScrollParent // enclosing tracker, nil for registry roots
	children  []Child
	ancestors []Element // scroll containers between el and the document root
	last      Position
}

// NewScrollParent creates a tracker for el and computes its ancestor chain.
func NewScrollParent(el Element, doc Document) *ScrollParent {
	if el == nil {
		panic("scrollkit: cannot track nil element")
	}
	p := &ScrollParent{el: el, doc: doc}
	p.RefreshAncestry()
	return p
}

// Element returns the tracked element.
func (p *ScrollParent) Element() Element {
	return p.el
}

// Parent returns the enclosing tracker, or nil.
func (p *ScrollParent) Parent() *ScrollParent {
	return p.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (p *ScrollParent) Children() []Child {
	return p.children
}

// NumChildren returns the number of children.
func (p *ScrollParent) NumChildren() int {
	return len(p.children)
}

// Ancestors returns the cached scroll containers, innermost first.
func (p *ScrollParent) Ancestors() []Element {
	return p.ancestors
}

// Add appends child, replacing any child already registered for the same
// element. A nested tracker records p as its enclosing parent.
func (p *ScrollParent) Add(child Child) {
	p.Remove(child)
	if sp, ok := child.(*ScrollParent); ok {
		if sp == p {
			panic("scrollkit: tracker cannot contain itself")
		}
		sp.parent = p
	}
	p.children = append(p.children, child)
	p.last = Position{}
}

// Remove detaches child (or the child tracking the same element). Returns
// whether anything was removed.
func (p *ScrollParent) Remove(child Child) bool {
	for i, c := range p.children {
		if sameChild(c, child) {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			if sp, ok := c.(*ScrollParent); ok && sp.parent == p {
				sp.parent = nil
			}
			p.last = Position{}
			return true
		}
	}
	return false
}

// sameChild reports whether a and b are the same child or children of the
// same kind for the same element.
func sameChild(a, b Child) bool {
	if a == b {
		return true
	}
	switch a.(type) {
	case *ScrollObject:
		if _, ok := b.(*ScrollObject); !ok {
			return false
		}
	case *ScrollParent:
		if _, ok := b.(*ScrollParent); !ok {
			return false
		}
	}
	return a.Element() == b.Element()
}

// RefreshAncestry recollects the scroll containers enclosing the tracked
// element and invalidates the cached position.
func (p *ScrollParent) RefreshAncestry() {
	p.last = Position{}
	p.ancestors = p.ancestors[:0]
	var root Element
	if p.doc != nil {
		root = p.doc.Root()
	}
	for el := p.el.ParentElement(); el != nil; el = el.ParentElement() {
		if el == root {
			break
		}
		if el.Metrics().Overflows() {
			p.ancestors = append(p.ancestors, el)
		}
	}
}

// ComputePosition returns the tracked element's position relative to the
// trigger line: Before above 0, After past 1, the raw ratio otherwise.
func (p *ScrollParent) ComputePosition() Position {
	m := p.el.Metrics()
	top := m.OffsetTop
	for _, a := range p.ancestors {
		am := a.Metrics()
		top += am.OffsetTop - am.ScrollTop
	}
	var pageY, viewport float64
	if p.doc != nil {
		pageY = p.doc.PageYOffset()
		viewport = p.doc.ViewportHeight()
	}
	if n := len(p.ancestors); n == 0 || p.ancestors[n-1].Metrics().ScrollTop != pageY {
		top -= pageY
	}
	bottom := top + m.OffsetHeight

	trigger := viewport * p.Trigger
	start := top - p.TopOffset
	end := bottom + p.BottomOffset
	if end == start {
		if trigger >= start {
			return After
		}
		return Before
	}
	ratio := (trigger - start) / (end - start)
	switch {
	case ratio > 1:
		return After
	case ratio < 0:
		return Before
	}
	return At(ratio)
}

// Render computes the current position and, when it changed since the last
// render (or force is set), renders every target at it. Nested trackers
// measure their own regions and are rendered every time, even while this
// tracker is hidden. Children are visited last-added first. Targets are not
// rendered while the tracked element is hidden.
func (p *ScrollParent) Render(out []Instruction, force bool) []Instruction {
	if len(p.children) == 0 {
		return out
	}
	var pos Position
	changed := false
	if !p.el.Metrics().Hidden() {
		pos = p.ComputePosition()
		changed = force || pos != p.last
		p.last = pos
	}
	for i := len(p.children) - 1; i >= 0; i-- {
		c := p.children[i]
		if _, nested := c.(*ScrollParent); !nested && !changed {
			continue
		}
		out = c.renderAt(pos, out, force)
	}
	return out
}

// renderAt ignores the enclosing position: a nested tracker always measures
// its own region.
func (p *ScrollParent) renderAt(_ Position, out []Instruction, force bool) []Instruction {
	return p.Render(out, force)
}
