package scrollkit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a scroll script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	From   float64 `yaml:"from,omitempty"`
	To     float64 `yaml:"to,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Ease   string  `yaml:"ease,omitempty"`
}

// scrollScript is the top-level structure of a scroll script.
type scrollScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences synthetic scrolling and snapshots across frames for
// automated testing of scroll animations. Attach it with
// Engine.SetScriptRunner.
//
// Supported actions:
//
//	scroll    jump to y
//	scrollBy  jump by y relative to the current offset
//	sweep     scroll linearly from `from` to `to` over `frames` frames
//	smooth    tween to y over `frames` frames with the easing named by `ease`
//	wait      idle for `frames` frames
//	snapshot  capture the document under `label`
type ScriptRunner struct {
	// FrameDuration is the simulated seconds per frame used by smooth steps.
	FrameDuration float32

	steps     []scriptStep
	cursor    int
	waitCount int
	scroller  *Scroller
	done      bool
}

// LoadScrollScript parses a YAML (or JSON) scroll script and returns a
// ScriptRunner ready to be attached to an Engine.
func LoadScrollScript(data []byte) (*ScriptRunner, error) {
	var script scrollScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "scrollBy", "sweep", "smooth", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse scroll script: step %d: unknown action %q", i, st.Action)
		}
		if st.Ease != "" {
			if _, ok := EasingByName(st.Ease); !ok {
				return nil, fmt.Errorf("parse scroll script: step %d: unknown easing %q", i, st.Ease)
			}
		}
	}
	return &ScriptRunner{FrameDuration: 1.0 / 60, steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner to the engine. The runner's step method
// is called at the start of every frame, before queued scrolls are applied.
func (e *Engine) SetScriptRunner(runner *ScriptRunner) {
	e.runner = runner
}

// Done reports whether all steps of the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending scrolls to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.scroller != nil && !r.scroller.Done() {
		r.scroller.Update(r.FrameDuration)
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "scroll":
		e.InjectScroll(st.Y)
	case "scrollBy":
		e.InjectScrollBy(st.Y)
	case "sweep":
		e.InjectSweep(st.From, st.To, st.Frames)
	case "smooth":
		if target, ok := e.doc.(ScrollTarget); ok {
			fn, _ := EasingByName(st.Ease)
			if r.scroller == nil {
				r.scroller = NewScroller(target)
			}
			r.scroller.ScrollTo(st.Y, float32(max(st.Frames, 1))*r.FrameDuration, fn)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		e.Snapshot(st.Label)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 &&
		(r.scroller == nil || r.scroller.Done()) {
		r.done = true
	}
}
