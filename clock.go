package scrollkit

// FrameID identifies a requested animation frame. Zero is never issued.
type FrameID uint64

// Scheduler is the host's "next animation frame" primitive.
type Scheduler interface {
	// RequestFrame schedules fn to run once on the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending request. Unknown IDs are ignored.
	CancelFrame(id FrameID)
}

type queuedFrame struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler for hosts that own their frame loop (an ebiten
// Update, a test, a headless simulation). Call Step once per frame.
// FrameQueue is not safe for concurrent use; the engine is single-threaded.
type FrameQueue struct {
	pending []queuedFrame
	running []queuedFrame
	nextID  FrameID
	frames  uint64
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Step.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, queuedFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a queued callback. Cancelling a callback of the batch
// currently being stepped prevents it from running if it has not run yet.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
	for i, f := range q.pending {
		if f.id == id {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = queuedFrame{}
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
}

// Step runs every callback queued before the call. Callbacks requested while
// stepping run on the next Step. Returns the number of callbacks run.
func (q *FrameQueue) Step() int {
	q.frames++
	q.running, q.pending = q.pending, q.running[:0]
	n := 0
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			q.running[i].fn = nil
			fn()
			n++
		}
	}
	q.running = q.running[:0]
	return n
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frames returns how many times Step has been called.
func (q *FrameQueue) Frames() uint64 {
	return q.frames
}
