package scrollkit

import "testing"

// newTestEngine returns an engine over a 200px viewport and a 2000px page.
func newTestEngine() (*Engine, *fakeDocument, *FrameQueue) {
	doc := newFakeDocument(200, 2000)
	q := NewFrameQueue()
	return NewEngine(doc, q), doc, q
}

func TestNewEngineNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewEngine(nil, q) did not panic")
		}
	}()
	NewEngine(nil, NewFrameQueue())
}

func TestEngineEndToEnd(t *testing.T) {
	e, doc, q := newTestEngine()
	section := doc.body.add("section", "data-scroll-parent", "").box(0, 1000)
	fade := section.add("div",
		"data-scroll-style.opacity-0", "0",
		"data-scroll-style.opacity-1", "1",
	)
	style := fade.holder("style")

	e.Add(doc.body, true)
	if !e.Running() {
		t.Fatal("engine not running after Add")
	}
	if n := len(e.Trackers()); n != 2 {
		t.Fatalf("len(Trackers()) = %d, want 2 (base and section)", n)
	}

	q.Step()
	if got := style.props["opacity"]; got != "0" {
		t.Errorf("opacity at 0 = %q, want %q", got, "0")
	}

	doc.pageY = 500
	q.Step()
	if got := style.props["opacity"]; got != "0.5" {
		t.Errorf("opacity at 500 = %q, want %q", got, "0.5")
	}

	doc.pageY = 5000
	q.Step()
	if got := style.props["opacity"]; got != "1" {
		t.Errorf("opacity past the end = %q, want %q", got, "1")
	}
}

func TestEngineAddOutsideBodyIgnored(t *testing.T) {
	e, doc, q := newTestEngine()
	head := doc.root.add("head", "data-scroll-title-0", "a")
	e.Add(head, true)
	if e.Running() || len(e.Trackers()) != 0 || e.ObjectFor(head) != nil {
		t.Error("element outside of body was tracked")
	}
	if q.Pending() != 0 {
		t.Error("frame requested for an ignored element")
	}

	detached := newFakeElement("div", "data-scroll-title-0", "a")
	e.Add(detached, false)
	if e.ObjectFor(detached) != nil {
		t.Error("detached element was tracked")
	}
}

func TestEngineAddUsesEnclosingTracker(t *testing.T) {
	e, doc, _ := newTestEngine()
	section := doc.body.add("section", "data-scroll-trigger", "0.25").box(0, 1000)
	e.Add(section, false)

	tp := e.TrackerFor(section)
	if tp == nil || tp == e.Base() || tp.Trigger != 0.25 {
		t.Fatalf("TrackerFor(section) = %+v", tp)
	}
	if tp.Parent() != e.Base() {
		t.Error("section tracker not attached to the base tracker")
	}

	// Added later on its own, the child finds the section's tracker.
	child := section.add("p", "data-scroll-title-0", "a", "data-scroll-title-1", "b")
	e.Add(child, false)
	if e.TrackerFor(child) != tp {
		t.Error("child not rendered under the enclosing tracker")
	}
	if obj := e.ObjectFor(child); obj == nil || len(obj.Paths()) != 1 {
		t.Errorf("ObjectFor(child) = %v", obj)
	}
}

func TestEngineReAddRefreshesInPlace(t *testing.T) {
	e, doc, q := newTestEngine()
	section := doc.body.add("section", "data-scroll-parent", "").box(0, 1000)
	p := section.add("p", "data-scroll-title-0", "0", "data-scroll-title-1", "10")
	e.Add(doc.body, true)
	q.Step()
	tp := e.TrackerFor(section)
	obj := e.ObjectFor(p)

	p.attrs = []Attribute{{"data-scroll-title-0", "100"}, {"data-scroll-title-1", "200"}}
	e.Add(doc.body, true)
	if e.TrackerFor(section) != tp || e.ObjectFor(p) != obj {
		t.Fatal("re-adding replaced the tracker or the object")
	}
	if n := tp.NumChildren(); n != 1 {
		t.Errorf("NumChildren() = %d, want 1", n)
	}
	q.Step()
	if got := p.props["title"]; got != "100" {
		t.Errorf("title = %q, want %q", got, "100")
	}
}

func TestEngineReAddMovesOwner(t *testing.T) {
	e, doc, _ := newTestEngine()
	p := doc.body.add("p", "data-scroll-title-0", "a")
	e.Add(p, false)
	if e.TrackerFor(p) != e.Base() {
		t.Fatal("p not under the base tracker")
	}

	p.attrs = append(p.attrs, Attribute{"data-scroll-parent", ""})
	p.box(0, 100)
	e.Add(p, false)
	tp := e.TrackerFor(p)
	if tp == e.Base() {
		t.Fatal("p did not get its own tracker")
	}
	for _, c := range e.Base().Children() {
		if c == Child(e.ObjectFor(p)) {
			t.Error("object still rendered by the base tracker")
		}
	}
	if tp.NumChildren() != 1 {
		t.Errorf("own tracker has %d children, want 1", tp.NumChildren())
	}
}

func TestEngineRemoveFreeze(t *testing.T) {
	e, doc, q := newTestEngine()
	doc.root.box(0, 1000)
	doc.root.metrics.ClientHeight = 200
	p := doc.body.add("p", "data-scroll-title-0", "0", "data-scroll-title-1", "10")
	e.Add(p, false)
	q.Step()

	e.Remove(p, &After)
	if got := p.props["title"]; got != "10" {
		t.Errorf("frozen title = %q, want %q", got, "10")
	}
	if e.Running() || len(e.Trackers()) != 0 {
		t.Error("engine still running without trackers")
	}
	if q.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", q.Pending())
	}
	if e.TrackerFor(doc.body) != e.Base() {
		t.Error("body association dropped by Remove")
	}

	// Adding again restarts the loop.
	e.Add(p, false)
	if !e.Running() || q.Pending() != 1 {
		t.Error("loop not restarted")
	}
}

func TestEngineRemoveWithoutFreeze(t *testing.T) {
	e, doc, q := newTestEngine()
	p := doc.body.add("p", "data-scroll-title-0", "0", "data-scroll-title-1", "10")
	e.Add(p, false)
	e.Remove(p, nil)
	q.Step()
	if _, ok := p.props["title"]; ok {
		t.Error("removed element was written")
	}
}

func TestEngineRemoveKeepsOtherTrackers(t *testing.T) {
	e, doc, _ := newTestEngine()
	a := doc.body.add("section", "data-scroll-parent", "").box(0, 100)
	a.add("p", "data-scroll-title-0", "a")
	b := doc.body.add("section", "data-scroll-parent", "").box(100, 100)
	b.add("p", "data-scroll-title-0", "b")
	e.Add(doc.body, true)

	e.Remove(a, nil)
	if !e.Running() {
		t.Fatal("engine stopped with a tracker left")
	}
	if n := len(e.Trackers()); n != 2 {
		t.Errorf("len(Trackers()) = %d, want 2", n)
	}
	if e.TrackerFor(a) != nil {
		t.Error("removed tracker still associated")
	}
}

func TestEngineReadsBeforeWrites(t *testing.T) {
	e, doc, q := newTestEngine()
	section := doc.body.add("section", "data-scroll-parent", "").box(0, 1000)
	writer := section.add("div", "data-scroll-scroll_top-0", "0", "data-scroll-scroll_top-1", "100")
	reader := doc.body.add("section", "data-scroll-parent", "").box(0, 1000)
	target := reader.add("p", "data-scroll-title-0", "0", "data-scroll-title-1", "1000")

	sink := &recordingSink{}
	e.SetInstructionSink(sink)
	e.Add(doc.body, true)
	doc.pageY = 500
	q.Step()

	if got := target.props["title"]; got != "500" {
		t.Errorf("title = %q, want %q", got, "500")
	}
	if got := writer.props["scrollTop"]; got != "50" {
		t.Errorf("scrollTop = %q, want %q", got, "50")
	}
	if len(sink.got) != 2 {
		t.Errorf("sink saw %d instructions, want 2", len(sink.got))
	}
}

func TestEngineDeterministic(t *testing.T) {
	run := func() string {
		e, doc, q := newTestEngine()
		s := doc.body.add("section", "data-scroll-parent", "").box(0, 1000)
		p := s.add("p", "data-scroll-title-0", "rotate(0deg)", "data-scroll-title-1", "rotate(360deg)")
		e.Add(doc.body, true)
		doc.pageY = 333
		q.Step()
		return p.props["title"]
	}
	if a, b := run(), run(); a != b || a == "" {
		t.Errorf("runs disagree: %q vs %q", a, b)
	}
}

func TestEngineForceTick(t *testing.T) {
	e, doc, q := newTestEngine()
	p := doc.body.add("p", "data-scroll-title-0", "0", "data-scroll-title-1", "1")
	sink := &recordingSink{}
	e.SetInstructionSink(sink)
	e.Add(p, false)
	q.Step()
	q.Step()
	if len(sink.got) != 1 {
		t.Fatalf("sink saw %d instructions, want 1", len(sink.got))
	}
	e.ForceTick()
	if len(sink.got) != 2 {
		t.Errorf("ForceTick applied %d, want 1 more", len(sink.got)-1)
	}
}

func TestEngineDefaultEasing(t *testing.T) {
	e, doc, q := newTestEngine()
	doc.root.box(0, 1000)
	doc.root.metrics.ClientHeight = 200
	fn, _ := EasingByName("inQuad")
	e.SetDefaultEasing(fn)
	p := doc.body.add("p", "data-scroll-title-0", "0", "data-scroll-title-1", "100")
	linear := doc.body.add("p", "data-scroll-title-0", "0", "data-scroll-title-1", "100", "data-scroll-ease", "linear")
	e.Add(doc.body, true)
	doc.pageY = 500
	q.Step()
	if got := p.props["title"]; got != "25" {
		t.Errorf("eased title = %q, want %q", got, "25")
	}
	if got := linear.props["title"]; got != "50" {
		t.Errorf("linear title = %q, want %q", got, "50")
	}
}

func TestEngineRefreshLayout(t *testing.T) {
	e, doc, _ := newTestEngine()
	list := doc.body.add("div").box(0, 200)
	s := list.add("section", "data-scroll-parent", "").box(0, 100)
	s.add("p", "data-scroll-title-0", "a")
	e.Add(doc.body, true)
	tp := e.TrackerFor(s)
	if len(tp.Ancestors()) != 0 {
		t.Fatal("unexpected scroll container")
	}
	list.metrics.ScrollHeight = 1000
	e.RefreshLayout()
	if len(tp.Ancestors()) != 1 {
		t.Error("RefreshLayout did not pick up the new scroll container")
	}
}

func TestEngineHiddenWrapperKeepsNestedTracker(t *testing.T) {
	e, doc, q := newTestEngine()
	span := doc.body.add("span", "data-scroll-parent", "") // inline: no client box
	section := span.add("section", "data-scroll-parent", "").box(0, 1000)
	p := section.add("p", "data-scroll-title-0", "0", "data-scroll-title-1", "1000")

	e.Add(doc.body, true)
	if n := len(e.Trackers()); n != 3 {
		t.Fatalf("len(Trackers()) = %d, want 3", n)
	}
	if e.TrackerFor(section).Parent() != e.TrackerFor(span) {
		t.Fatal("section tracker not nested under the span tracker")
	}

	doc.pageY = 500
	q.Step()
	if got := p.props["title"]; got != "500" {
		t.Errorf("title = %q, want %q", got, "500")
	}
}
