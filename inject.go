package scrollkit

// InjectScroll queues an absolute page offset. Queued offsets are applied one
// per frame, before the tick, when the document implements ScrollTarget.
func (e *Engine) InjectScroll(y float64) {
	e.injectQueue = append(e.injectQueue, y)
}

// InjectScrollBy queues an offset relative to the last queued one (or the
// current offset when the queue is empty).
func (e *Engine) InjectScrollBy(dy float64) {
	e.InjectScroll(e.lastQueuedScroll() + dy)
}

// InjectSweep queues a scroll from `from` to `to` spread linearly over
// frames frames (at least 2: the start and the end offset).
func (e *Engine) InjectSweep(from, to float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		e.InjectScroll(from + (to-from)*t)
	}
}

// PendingScrolls returns the number of queued offsets.
func (e *Engine) PendingScrolls() int {
	return len(e.injectQueue)
}

func (e *Engine) lastQueuedScroll() float64 {
	if n := len(e.injectQueue); n > 0 {
		return e.injectQueue[n-1]
	}
	if st, ok := e.doc.(ScrollTarget); ok {
		return st.ScrollY()
	}
	return e.doc.PageYOffset()
}

// processInjectedScroll pops one queued offset and applies it.
// Returns true if an offset was consumed.
func (e *Engine) processInjectedScroll() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	y := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	if st, ok := e.doc.(ScrollTarget); ok {
		st.SetScrollY(y)
	}
	return true
}
