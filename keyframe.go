package scrollkit

import (
	"regexp"
	"strconv"
)

// Keyframe is a template value pinned to a position. Extrapolate frames carry
// no template; they only mark 0 or 1 as a boundary of the active window.
type Keyframe struct {
	Position    Position
	Template    string
	Extrapolate bool
}

// Frame tokens used by the attribute grammar.
const (
	FrameBefore      = "before"
	FrameAfter       = "after"
	FrameExtrapolate = "extrapolate"
)

// leadingNumber matches the longest decimal prefix, like parseFloat does.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseFrame parses a frame token. Numeric tokens are read up to the first
// character that cannot continue a decimal number ("50abc" is 50). ok is
// false for tokens that are neither numeric nor a known sentinel.
func ParseFrame(token string) (pos Position, extrapolate bool, ok bool) {
	if v, ok := parseLeadingFloat(token); ok {
		return At(v), false, true
	}
	switch token {
	case FrameBefore:
		return Before, false, true
	case FrameAfter:
		return After, false, true
	case FrameExtrapolate:
		return Position{}, true, true
	}
	return Position{}, false, false
}

// parseLeadingFloat reads a decimal prefix of s after leading whitespace.
func parseLeadingFloat(s string) (float64, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f') {
		i++
	}
	m := leadingNumber.FindString(s[i:])
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out of range exponents still parse to ±Inf with an error.
		return 0, false
	}
	return v, true
}

// KeyframeSet collects keyframes per property path, keeping the order in
// which paths were first declared.
type KeyframeSet struct {
	paths  []string
	frames map[string][]Keyframe
}

// NewKeyframeSet returns an empty set.
func NewKeyframeSet() *KeyframeSet {
	return &KeyframeSet{frames: make(map[string][]Keyframe)}
}

func (s *KeyframeSet) declare(path string) {
	if _, ok := s.frames[path]; !ok {
		s.paths = append(s.paths, path)
		s.frames[path] = nil
	}
}

// Declare registers path with no keyframes. Used for method-style paths
// that have not received frames yet; later frames append to it.
func (s *KeyframeSet) Declare(path string) {
	s.declare(path)
}

// Reset drops every keyframe of path while keeping its declaration order.
func (s *KeyframeSet) Reset(path string) {
	s.declare(path)
	s.frames[path] = nil
}

// Add appends a keyframe for path.
func (s *KeyframeSet) Add(path string, kf Keyframe) {
	s.declare(path)
	s.frames[path] = append(s.frames[path], kf)
}

// AddExtrapolate marks both ends of the range for path.
func (s *KeyframeSet) AddExtrapolate(path string) {
	s.Add(path, Keyframe{Position: At(0), Extrapolate: true})
	s.Add(path, Keyframe{Position: At(1), Extrapolate: true})
}

// Paths returns the declared property paths in declaration order.
func (s *KeyframeSet) Paths() []string {
	return s.paths
}

// Frames returns the keyframes recorded for path.
func (s *KeyframeSet) Frames(path string) []Keyframe {
	return s.frames[path]
}

// Len returns the number of declared paths.
func (s *KeyframeSet) Len() int {
	return len(s.paths)
}
