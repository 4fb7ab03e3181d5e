package scrollkit

import (
	"regexp"
	"strings"

	"github.com/tanema/gween/ease"
)

// lastSegment splits the final path segment into its name and an optional
// "()" method marker.
var lastSegment = regexp.MustCompile(`^([^()]*)(\(\))?$`)

// property is one compiled, resolved property path of a ScrollObject.
type property struct {
	path     string
	parents  []string // segments traversed with Target.Property
	name     string   // segment written or invoked
	method   bool
	compiled *CompiledProperty
}

// ScrollObject owns the compiled properties of one animated element.
type ScrollObject struct {
	target Element
	easing ease.TweenFunc
	props  []property
	window ActiveWindow
	last   Position
}

// NewScrollObject compiles set for target. easing may be nil.
func NewScrollObject(target Element, set *KeyframeSet, easing ease.TweenFunc) *ScrollObject {
	o := &ScrollObject{target: target, easing: easing}
	o.Refresh(set)
	return o
}

// Target returns the animated element.
func (o *ScrollObject) Target() Element {
	return o.target
}

// Element returns the animated element. It identifies the object among the
// children of a ScrollParent.
func (o *ScrollObject) Element() Element {
	return o.target
}

// Window returns the union of the active windows of all properties.
func (o *ScrollObject) Window() ActiveWindow {
	return o.window
}

// Paths returns the property paths in render order.
func (o *ScrollObject) Paths() []string {
	paths := make([]string, len(o.props))
	for i, p := range o.props {
		paths[i] = p.path
	}
	return paths
}

// SetEasing replaces the easing used by the next Refresh.
func (o *ScrollObject) SetEasing(fn ease.TweenFunc) {
	o.easing = fn
}

// Refresh recompiles every property from set and forgets the last rendered
// position. Paths with a malformed last segment are skipped.
func (o *ScrollObject) Refresh(set *KeyframeSet) {
	o.props = o.props[:0]
	o.window = ActiveWindow{}
	o.last = Position{}
	if set == nil {
		return
	}
	for _, path := range set.Paths() {
		segs := strings.Split(path, ".")
		m := lastSegment.FindStringSubmatch(segs[len(segs)-1])
		if m == nil {
			continue
		}
		p := property{
			path:     path,
			parents:  segs[:len(segs)-1],
			name:     m[1],
			method:   m[2] != "",
			compiled: CompileWithEasing(set.Frames(path), o.easing),
		}
		w := p.compiled.Window()
		if p.method && w == (ActiveWindow{}) {
			// A bare method declaration is called on every position change.
			w = ActiveWindow{HasBefore: true, Min: floatPtr(0), Max: floatPtr(1), HasAfter: true}
		}
		o.props = append(o.props, p)
		o.window = o.window.Union(w)
	}
}

// Render appends one instruction per property for pos to out. Nothing is
// emitted when pos equals the last rendered position, or when both pos and
// the last position are numeric and on the same inert side of the active
// window. force bypasses both checks.
func (o *ScrollObject) Render(pos Position, out []Instruction, force bool) []Instruction {
	if !force {
		if pos == o.last {
			return out
		}
		if o.inert(pos) {
			return out
		}
	}
	o.last = pos
	for i := range o.props {
		p := &o.props[i]
		var holder Target = o.target
		for _, seg := range p.parents {
			if holder = holder.Property(seg); holder == nil {
				break
			}
		}
		if holder == nil {
			continue
		}
		value := p.compiled.Compute(pos)
		if p.method {
			out = append(out, Instruction{
				Kind:     InstructionInvoke,
				Target:   holder,
				Name:     p.name,
				Position: pos,
				Args:     splitArgs(value),
			})
			continue
		}
		out = append(out, Instruction{
			Kind:   InstructionAssign,
			Target: holder,
			Name:   p.name,
			Value:  value,
		})
	}
	return out
}

func (o *ScrollObject) renderAt(pos Position, out []Instruction, force bool) []Instruction {
	return o.Render(pos, out, force)
}

func (o *ScrollObject) inert(pos Position) bool {
	cur, ok := pos.Value()
	if !ok {
		return false
	}
	prev, ok := o.last.Value()
	if !ok {
		return false
	}
	side := o.window.side(cur)
	return side != 0 && side == o.window.side(prev)
}
