package scrollkit

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// numericToken matches the numbers that take part in interpolation.
var numericToken = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

var (
	spacedComma  = regexp.MustCompile(` *, *`)
	spacedOpen   = regexp.MustCompile(`\( +`)
	spacedClose  = regexp.MustCompile(` +\)`)
	spaceRunning = regexp.MustCompile(` {2,}`)
)

// normalizeTemplate trims a template and removes the spacing around commas
// and parentheses so that equal shapes compare and render identically.
func normalizeTemplate(s string) string {
	s = strings.TrimSpace(s)
	s = spacedComma.ReplaceAllString(s, ",")
	s = spacedOpen.ReplaceAllString(s, "(")
	s = spacedClose.ReplaceAllString(s, ")")
	return spaceRunning.ReplaceAllString(s, " ")
}

// splitTemplate cuts a normalized template into the static text around its
// numeric tokens. len(static) is always len(values)+1.
func splitTemplate(s string) (static []string, values []float64) {
	last := 0
	for _, loc := range numericToken.FindAllStringIndex(s, -1) {
		v, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
		if err != nil {
			v = 0
		}
		static = append(static, s[last:loc[0]])
		values = append(values, v)
		last = loc[1]
	}
	static = append(static, s[last:])
	return static, values
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// easeFraction runs frac through a float32 easing and drops the float32
// rounding noise, so linear easing of 0.3 yields 0.3.
func easeFraction(fn ease.TweenFunc, frac float64) float64 {
	f := fn(float32(frac), 0, 1, 1)
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return v
}

// stop is one numeric keyframe carrying a value.
type stop struct {
	pos      float64
	template string
	values   []float64
}

// CompiledProperty is the position-to-value function built from the
// keyframes of one property. It is immutable once compiled.
type CompiledProperty struct {
	stops  []stop
	static []string // shared skeleton; nil in step mode
	step   bool
	before *string
	after  *string
	window ActiveWindow
	easing ease.TweenFunc
}

// Compile builds the property function for frames with linear interpolation.
func Compile(frames []Keyframe) *CompiledProperty {
	return CompileWithEasing(frames, nil)
}

// CompileWithEasing builds the property function for frames. When easing is
// non-nil the fraction between two bracketing keyframes is shaped by it
// before the numeric tokens are interpolated.
func CompileWithEasing(frames []Keyframe, easing ease.TweenFunc) *CompiledProperty {
	c := &CompiledProperty{easing: easing}

	sorted := make([]Keyframe, len(frames))
	copy(sorted, frames)
	sort.SliceStable(sorted, func(i, j int) bool {
		return frameRank(sorted[i]) < frameRank(sorted[j])
	})

	var markers []float64
	for _, kf := range sorted {
		switch {
		case kf.Extrapolate:
			if v, ok := kf.Position.Value(); ok {
				markers = append(markers, v)
			}
		case kf.Position.IsBefore():
			tpl := kf.Template
			c.before = &tpl
			c.window.HasBefore = true
		case kf.Position.IsAfter():
			tpl := kf.Template
			c.after = &tpl
			c.window.HasAfter = true
		case kf.Position.IsNumeric():
			v, _ := kf.Position.Value()
			c.stops = append(c.stops, stop{pos: v, template: kf.Template})
		}
	}
	if len(c.stops) == 0 {
		return c
	}

	c.window.Min = floatPtr(c.stops[0].pos)
	c.window.Max = floatPtr(c.stops[len(c.stops)-1].pos)
	for _, m := range markers {
		if m < *c.window.Min {
			c.window.Min = floatPtr(m)
		}
		if m > *c.window.Max {
			c.window.Max = floatPtr(m)
		}
	}

	for i := range c.stops {
		static, values := splitTemplate(normalizeTemplate(c.stops[i].template))
		if i == 0 {
			c.static = static
		} else if !sameShape(c.static, static) {
			c.step = true
			break
		}
		c.stops[i].values = values
	}
	if c.step {
		c.static = nil
		for i := range c.stops {
			c.stops[i].values = nil
		}
	}
	return c
}

// frameRank orders Before first, numeric positions ascending and After last.
func frameRank(kf Keyframe) float64 {
	switch {
	case kf.Position.IsBefore():
		return -1e308
	case kf.Position.IsAfter():
		return 1e308
	}
	v, _ := kf.Position.Value()
	return v
}

func sameShape(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Window returns the range outside of which Compute is constant.
func (c *CompiledProperty) Window() ActiveWindow {
	return c.window
}

// Interpolates reports whether numeric tokens are interpolated. It is false
// when the keyframe templates disagree in shape and the property steps.
func (c *CompiledProperty) Interpolates() bool {
	return len(c.stops) > 0 && !c.step
}

// Compute returns the property value at p. Numeric positions are clamped to
// [0, 1]. Positions ahead of the first keyframe take its value.
func (c *CompiledProperty) Compute(p Position) string {
	switch {
	case p.IsBefore():
		if c.before != nil {
			return *c.before
		}
		if len(c.stops) == 0 {
			return ""
		}
		return c.valueAt(0)
	case p.IsAfter():
		if c.after != nil {
			return *c.after
		}
		if len(c.stops) == 0 {
			return ""
		}
		return c.valueAt(len(c.stops) - 1)
	}

	v, ok := p.Value()
	if !ok || len(c.stops) == 0 {
		return ""
	}
	v = min(max(v, 0), 1)

	if v < c.stops[0].pos {
		return c.valueAt(0)
	}
	i := 0
	for j := 1; j < len(c.stops); j++ {
		if c.stops[j].pos > v {
			break
		}
		i = j
	}
	if c.step || i == len(c.stops)-1 {
		return c.valueAt(i)
	}

	left, right := c.stops[i], c.stops[i+1]
	frac := (v - left.pos) / (right.pos - left.pos)
	if c.easing != nil {
		frac = easeFraction(c.easing, frac)
	}
	values := make([]float64, len(left.values))
	for k := range left.values {
		values[k] = left.values[k] + (right.values[k]-left.values[k])*frac
	}
	return c.render(values)
}

// valueAt returns keyframe i verbatim in step mode, or re-rendered from the
// normalized skeleton otherwise.
func (c *CompiledProperty) valueAt(i int) string {
	if c.step {
		return c.stops[i].template
	}
	return c.render(c.stops[i].values)
}

func (c *CompiledProperty) render(values []float64) string {
	var b strings.Builder
	for i, v := range values {
		b.WriteString(c.static[i])
		b.WriteString(formatNumber(v))
	}
	b.WriteString(c.static[len(c.static)-1])
	return b.String()
}
