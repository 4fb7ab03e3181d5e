package scrollkit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scroller animates the vertical offset of a ScrollTarget, the way a browser
// performs a smooth scroll. Call Update once per frame.
type Scroller struct {
	target ScrollTarget
	tween  *gween.Tween
	done   bool
}

// NewScroller creates an idle scroller for target.
func NewScroller(target ScrollTarget) *Scroller {
	return &Scroller{target: target, done: true}
}

// ScrollTo animates from the current offset to y over duration seconds.
// A nil easing scrolls linearly. A non-positive duration jumps immediately.
func (s *Scroller) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		s.target.SetScrollY(y)
		s.tween = nil
		s.done = true
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	s.tween = gween.New(float32(s.target.ScrollY()), float32(y), duration, easeFn)
	s.done = false
}

// Update advances the animation by dt seconds and writes the offset.
// Returns true once the animation has finished.
func (s *Scroller) Update(dt float32) bool {
	if s.done || s.tween == nil {
		return true
	}
	val, finished := s.tween.Update(dt)
	s.target.SetScrollY(float64(val))
	if finished {
		s.done = true
		s.tween = nil
	}
	return s.done
}

// Done reports whether no animation is in progress.
func (s *Scroller) Done() bool {
	return s.done
}
