package scrollkit

import (
	"regexp"
	"strings"

	"github.com/tanema/gween/ease"
)

// AttributePrefix starts every attribute the parser reads.
const AttributePrefix = "data-scroll"

// attrName matches the prefix followed by its separator.
var attrName = regexp.MustCompile(`^data-scroll[-.]`)

// methodPath matches a property path declared as a method ("scrollTo()").
var methodPath = regexp.MustCompile(`\(\)$`)

// declaration is what one element's attributes ask for.
type declaration struct {
	tracker bool
	trigger *float64
	top     *float64
	bottom  *float64
	easing  ease.TweenFunc
	frames  *KeyframeSet // nil when no keyframe attribute is present
}

// declare reads the data-scroll attributes of el. It has no side effects.
// Attributes that do not fit the grammar are ignored.
func declare(el Element) declaration {
	var d declaration
	for _, attr := range el.Attributes() {
		if !attrName.MatchString(attr.Name) {
			continue
		}
		data := attr.Name[len(AttributePrefix):]
		switch data {
		case "-parent":
			d.tracker = true
		case "-trigger":
			if v, ok := parseLeadingFloat(attr.Value); ok {
				d.tracker = true
				d.trigger = floatPtr(v)
			}
		case "-top":
			if v, ok := parseLeadingFloat(attr.Value); ok {
				d.tracker = true
				d.top = floatPtr(v)
			}
		case "-bottom":
			if v, ok := parseLeadingFloat(attr.Value); ok {
				d.tracker = true
				d.bottom = floatPtr(v)
			}
		case "-ease":
			if fn, ok := EasingByName(strings.TrimSpace(attr.Value)); ok {
				d.easing = fn
			}
		default:
			declareFrame(&d, data, attr.Value)
		}
	}
	return d
}

// declareFrame handles "-<path>-<frame>" and "-<path>()".
func declareFrame(d *declaration, data, value string) {
	tokens := strings.Split(data, "-")[1:]
	if len(tokens) == 0 || len(tokens) > 2 {
		return
	}
	if d.frames == nil {
		d.frames = NewKeyframeSet()
	}
	path := DecodePropertyName(tokens[0])
	if len(tokens) == 1 {
		if methodPath.MatchString(tokens[0]) {
			d.frames.Reset(path)
		}
		return
	}
	pos, extrapolate, ok := ParseFrame(tokens[1])
	switch {
	case !ok:
	case extrapolate:
		d.frames.AddExtrapolate(path)
	default:
		d.frames.Add(path, Keyframe{Position: pos, Template: value})
	}
}

// DecodePropertyName turns an attribute-safe token into a property path.
// "_x" after a letter, a non-word character or the start becomes "X" and
// "__" becomes "_", so "style.background_color" reads "style.backgroundColor"
// and "my__prop" reads "my_prop".
func DecodePropertyName(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); {
		c := token[i]
		if c == '_' && i+1 < len(token) {
			next := token[i+1]
			if next == '_' {
				b.WriteByte('_')
				i += 2
				continue
			}
			if isLetter(next) && (i == 0 || isLetter(token[i-1]) || !isWordChar(token[i-1])) {
				b.WriteString(strings.ToUpper(string(next)))
				i += 2
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isLetter(c) || ('0' <= c && c <= '9') || c == '_'
}

// parse materializes the declarations of el under parent and, when subtree
// is set, of its descendants. The tracker resolved for el is passed down as
// the parent of its children.
func (e *Engine) parse(el Element, parent *ScrollParent, subtree bool) {
	parent = e.bind(el, parent, declare(el))
	if !subtree {
		return
	}
	for _, child := range el.Children() {
		e.parse(child, parent, true)
	}
}

// bind applies one element's declaration and returns the tracker its
// descendants belong to.
func (e *Engine) bind(el Element, parent *ScrollParent, d declaration) *ScrollParent {
	prev := e.owners[el]
	if d.tracker {
		tp := e.trackerFor(el, parent)
		if d.trigger != nil {
			tp.Trigger = *d.trigger
		}
		if d.top != nil {
			tp.TopOffset = *d.top
		}
		if d.bottom != nil {
			tp.BottomOffset = *d.bottom
		}
		parent = tp
	}
	if d.frames == nil {
		return parent
	}

	easing := d.easing
	if easing == nil {
		easing = e.easing
	}
	e.owners[el] = parent
	if obj := e.objects[el]; obj != nil {
		obj.SetEasing(easing)
		obj.Refresh(d.frames)
		if prev != parent {
			if prev != nil {
				prev.Remove(obj)
			}
			parent.Add(obj)
		}
	} else {
		obj = NewScrollObject(el, d.frames, easing)
		e.objects[el] = obj
		parent.Add(obj)
	}
	parent.RefreshAncestry()
	if e.debug {
		debugCheckChildCount(parent)
	}
	return parent
}

// trackerFor returns the tracker declared by el, creating and registering it
// on first use. A new tracker is attached to the enclosing one.
func (e *Engine) trackerFor(el Element, enclosing *ScrollParent) *ScrollParent {
	if tp := e.trackers[el]; tp != nil {
		tp.RefreshAncestry()
		return tp
	}
	tp := NewScrollParent(el, e.doc)
	e.trackers[el] = tp
	e.owners[el] = tp
	e.register(tp)
	if enclosing != nil && enclosing != tp {
		enclosing.Add(tp)
	}
	return tp
}
