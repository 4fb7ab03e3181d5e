package scrollkit

import "strconv"

// posKind distinguishes numeric positions from the out-of-range sentinels.
type posKind uint8

const (
	posUnset  posKind = iota // zero value: nothing rendered yet
	posValue                 // numeric position, nominally in [0, 1]
	posBefore                // tracked region not reached yet
	posAfter                 // tracked region already left
)

// Position is a normalized scroll position: a number (nominally in [0, 1])
// or one of the sentinels Before and After. Positions are comparable with ==.
// The zero Position is "unset" and never equals a rendered position.
type Position struct {
	kind  posKind
	value float64
}

var (
	// Before is the state prior to entering the tracked range.
	Before = Position{kind: posBefore}
	// After is the state past leaving the tracked range.
	After = Position{kind: posAfter}
)

// At returns the numeric position v. v is not clamped.
func At(v float64) Position {
	if v == 0 {
		v = 0 // fold -0 so At(-0) == At(0)
	}
	return Position{kind: posValue, value: v}
}

// Value returns the numeric value and true, or 0 and false for sentinels and
// the unset position.
func (p Position) Value() (float64, bool) {
	return p.value, p.kind == posValue
}

// IsBefore reports whether p is the Before sentinel.
func (p Position) IsBefore() bool { return p.kind == posBefore }

// IsAfter reports whether p is the After sentinel.
func (p Position) IsAfter() bool { return p.kind == posAfter }

// IsSet reports whether p is anything other than the zero Position.
func (p Position) IsSet() bool { return p.kind != posUnset }

// IsNumeric reports whether p carries a numeric value.
func (p Position) IsNumeric() bool { return p.kind == posValue }

func (p Position) String() string {
	switch p.kind {
	case posBefore:
		return "before"
	case posAfter:
		return "after"
	case posValue:
		return strconv.FormatFloat(p.value, 'f', -1, 64)
	default:
		return "unset"
	}
}

// ActiveWindow is the position range outside of which a compiled property is
// constant. Min and Max are nil when no numeric keyframe carries a value.
type ActiveWindow struct {
	HasBefore bool
	Min       *float64
	Max       *float64
	HasAfter  bool
}

// Union widens w to also cover other: the smaller Min, the larger Max and the
// OR of the sentinel flags.
func (w ActiveWindow) Union(other ActiveWindow) ActiveWindow {
	out := ActiveWindow{
		HasBefore: w.HasBefore || other.HasBefore,
		HasAfter:  w.HasAfter || other.HasAfter,
		Min:       w.Min,
		Max:       w.Max,
	}
	if other.Min != nil && (out.Min == nil || *other.Min < *out.Min) {
		out.Min = floatPtr(*other.Min)
	}
	if other.Max != nil && (out.Max == nil || *other.Max > *out.Max) {
		out.Max = floatPtr(*other.Max)
	}
	return out
}

// Contains reports whether v lies inside [Min, Max].
func (w ActiveWindow) Contains(v float64) bool {
	return w.side(v) == 0
}

// side returns -1 below the window, +1 above it and 0 inside. A window with
// no numeric range is inert everywhere and reports -1 for every value.
func (w ActiveWindow) side(v float64) int {
	if w.Min == nil || w.Max == nil {
		return -1
	}
	switch {
	case v < *w.Min:
		return -1
	case v > *w.Max:
		return 1
	default:
		return 0
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// Metrics is a snapshot of an element's layout box, in CSS pixels.
type Metrics struct {
	OffsetTop    float64
	OffsetHeight float64
	ClientWidth  float64
	ClientHeight float64
	ScrollTop    float64
	ScrollWidth  float64
	ScrollHeight float64
}

// Overflows reports whether the content box is larger or smaller than the
// scrollable area, which marks the element as a scroll container.
func (m Metrics) Overflows() bool {
	return m.ScrollHeight != m.ClientHeight || m.ScrollWidth != m.ClientWidth
}

// Hidden reports whether the element currently renders with no area.
func (m Metrics) Hidden() bool {
	return m.ClientWidth == 0 && m.ClientHeight == 0
}

// Attribute is a single markup attribute in document order.
type Attribute struct {
	Name  string
	Value string
}
