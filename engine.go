package scrollkit

import (
	"time"

	"github.com/tanema/gween/ease"
)

const defaultBatchCap = 256

// Engine owns the tracker registry, the element associations and the frame
// loop for one document. Engines are independent of each other; several can
// run against different documents in one process.
//
// The engine is single-threaded: Add, Remove and Tick must be called from the
// goroutine that steps the Scheduler, and never from inside an Invoker.
type Engine struct {
	doc   Document
	sched Scheduler
	base  *ScrollParent

	registry []*ScrollParent
	trackers map[Element]*ScrollParent // element -> tracker it declares
	owners   map[Element]*ScrollParent // element -> tracker it renders under
	objects  map[Element]*ScrollObject

	running bool
	frame   FrameID

	batch  []Instruction
	sink   InstructionSink
	easing ease.TweenFunc
	debug  bool

	// Synthetic input and capture (inject.go, script.go, snapshot.go)
	injectQueue   []float64
	runner        *ScriptRunner
	snapshotQueue []string

	// SnapshotDir is where Snapshot writes captures.
	SnapshotDir string
}

// NewEngine creates an engine for doc driven by sched. The default tracker
// wrapping the whole document is created immediately and joins the registry
// the first time an element is added under it.
func NewEngine(doc Document, sched Scheduler) *Engine {
	if doc == nil {
		panic("scrollkit: nil document")
	}
	if sched == nil {
		panic("scrollkit: nil scheduler")
	}
	e := &Engine{
		doc:         doc,
		sched:       sched,
		trackers:    make(map[Element]*ScrollParent),
		owners:      make(map[Element]*ScrollParent),
		objects:     make(map[Element]*ScrollObject),
		batch:       make([]Instruction, 0, defaultBatchCap),
		SnapshotDir: "snapshots",
	}
	e.base = NewScrollParent(doc.Root(), doc)
	e.trackers[doc.Root()] = e.base
	e.owners[doc.Root()] = e.base
	if body := doc.Body(); body != nil {
		e.trackers[body] = e.base
		e.owners[body] = e.base
	}
	return e
}

// Document returns the tracked document.
func (e *Engine) Document() Document {
	return e.doc
}

// Base returns the default tracker wrapping the whole document.
func (e *Engine) Base() *ScrollParent {
	return e.base
}

// Trackers returns the registered trackers in registration order. The
// returned slice MUST NOT be mutated.
func (e *Engine) Trackers() []*ScrollParent {
	return e.registry
}

// ObjectFor returns the ScrollObject animating el, or nil.
func (e *Engine) ObjectFor(el Element) *ScrollObject {
	return e.objects[el]
}

// TrackerFor returns the tracker el renders under (its own tracker when el
// declares one), or nil when el is not tracked.
func (e *Engine) TrackerFor(el Element) *ScrollParent {
	return e.owners[el]
}

// Running reports whether the frame loop is scheduled.
func (e *Engine) Running() bool {
	return e.running
}

// SetInstructionSink sets an observer for applied instructions. nil clears it.
func (e *Engine) SetInstructionSink(sink InstructionSink) {
	e.sink = sink
}

// SetDefaultEasing sets the easing for elements without a data-scroll-ease
// attribute. It applies to elements parsed afterwards.
func (e *Engine) SetDefaultEasing(fn ease.TweenFunc) {
	e.easing = fn
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick timing
// stats are logged to stderr and large trackers are reported.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Add starts tracking el and, when subtree is set, its descendants. Elements
// outside of the document body are ignored. Adding an element again
// refreshes its trackers and targets in place.
func (e *Engine) Add(el Element, subtree bool) {
	if el == nil {
		panic("scrollkit: cannot add nil element")
	}
	owner := e.owners[el]
	body := e.doc.Body()
	for cur := el; cur != body; {
		if cur = cur.ParentElement(); cur == nil {
			return
		}
		if owner == nil {
			owner = e.owners[cur]
		}
	}
	if owner == nil {
		owner = e.base
	}
	if owner == e.base {
		e.register(e.base)
	}
	e.parse(el, owner, subtree)
	if len(e.registry) > 0 {
		e.start()
	}
}

// Remove stops tracking el and its descendants. When freeze is non-nil every
// removed target is rendered once at *freeze and the result applied before
// its state is dropped. The frame loop stops once no tracker is left.
func (e *Engine) Remove(el Element, freeze *Position) {
	if el == nil {
		return
	}
	e.remove(el, freeze)
	if len(e.base.children) == 0 {
		e.unregister(e.base)
	}
	if len(e.registry) == 0 {
		e.stop()
	}
}

func (e *Engine) remove(el Element, freeze *Position) {
	owner := e.owners[el]
	if tp := e.trackers[el]; tp != nil && tp != e.base {
		e.unregister(tp)
		if tp.parent != nil {
			tp.parent.Remove(tp)
		}
		delete(e.trackers, el)
	}
	if obj := e.objects[el]; obj != nil {
		if owner != nil {
			owner.Remove(obj)
		}
		if freeze != nil {
			applyInstructions(obj.Render(*freeze, nil, true), e.sink)
		}
		delete(e.objects, el)
	}
	if el != e.doc.Root() && el != e.doc.Body() {
		delete(e.owners, el)
	}
	for _, child := range el.Children() {
		e.remove(child, freeze)
	}
}

// Tick renders every registered tracker and applies the collected
// instructions. All positions are read before the first write.
func (e *Engine) Tick() {
	e.tick(false)
}

// ForceTick re-renders every tracker and target even if nothing moved.
func (e *Engine) ForceTick() {
	e.tick(true)
}

func (e *Engine) tick(force bool) {
	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.batch = e.batch[:0]
	for _, p := range e.registry {
		if p.parent != nil {
			continue // rendered by its enclosing tracker
		}
		e.batch = p.Render(e.batch, force)
	}

	if e.debug {
		stats.readTime = time.Since(t0)
		stats.instructionCount = len(e.batch)
		stats.trackerCount = len(e.registry)
		t0 = time.Now()
	}

	applyInstructions(e.batch, e.sink)

	if e.debug {
		stats.applyTime = time.Since(t0)
		e.debugLog(stats)
	}
}

// RefreshLayout recollects the scroll-container chain of every tracker. Call
// it after the host changed which elements overflow.
func (e *Engine) RefreshLayout() {
	e.base.RefreshAncestry()
	for _, p := range e.registry {
		p.RefreshAncestry()
	}
}

func (e *Engine) register(p *ScrollParent) {
	for _, q := range e.registry {
		if q == p {
			return
		}
	}
	e.registry = append(e.registry, p)
}

func (e *Engine) unregister(p *ScrollParent) {
	for i, q := range e.registry {
		if q == p {
			copy(e.registry[i:], e.registry[i+1:])
			e.registry[len(e.registry)-1] = nil
			e.registry = e.registry[:len(e.registry)-1]
			return
		}
	}
}

// start schedules the frame loop unless it is already running.
func (e *Engine) start() {
	if e.running {
		return
	}
	e.running = true
	e.frame = e.sched.RequestFrame(e.step)
}

// stop cancels the pending frame.
func (e *Engine) stop() {
	if !e.running {
		return
	}
	e.running = false
	if e.frame != 0 {
		e.sched.CancelFrame(e.frame)
		e.frame = 0
	}
}

// step is the frame callback: scripted input first, then the tick, then
// queued captures.
func (e *Engine) step() {
	e.frame = 0
	if !e.running {
		return
	}
	if e.runner != nil {
		e.runner.step(e)
	}
	e.processInjectedScroll()
	e.Tick()
	e.flushSnapshots()
	if e.running {
		e.frame = e.sched.RequestFrame(e.step)
	}
}
