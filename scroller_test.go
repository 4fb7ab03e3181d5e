package scrollkit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestScrollerLinear(t *testing.T) {
	doc := newFakeDocument(200, 2000)
	s := NewScroller(doc)
	if !s.Done() {
		t.Fatal("new scroller is busy")
	}
	s.ScrollTo(100, 1, nil)
	if s.Done() {
		t.Fatal("Done() right after ScrollTo")
	}
	s.Update(0.5)
	if math.Abs(doc.pageY-50) > 0.01 {
		t.Errorf("pageY at half time = %v, want ~50", doc.pageY)
	}
	if !s.Update(0.5) {
		t.Error("Update did not report completion")
	}
	if doc.pageY != 100 {
		t.Errorf("pageY at the end = %v, want 100", doc.pageY)
	}
	if !s.Update(1) {
		t.Error("idle Update should report done")
	}
}

func TestScrollerEased(t *testing.T) {
	doc := newFakeDocument(200, 2000)
	s := NewScroller(doc)
	s.ScrollTo(100, 1, ease.InQuad)
	s.Update(0.5)
	if math.Abs(doc.pageY-25) > 0.01 {
		t.Errorf("pageY = %v, want ~25", doc.pageY)
	}
}

func TestScrollerZeroDurationJumps(t *testing.T) {
	doc := newFakeDocument(200, 2000)
	s := NewScroller(doc)
	s.ScrollTo(300, 0, nil)
	if doc.pageY != 300 || !s.Done() {
		t.Errorf("pageY = %v, done = %v", doc.pageY, s.Done())
	}
}
