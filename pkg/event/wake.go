package event

import (
	"sync"

	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/platform"
)

// WakeQueue collects id paths of asynchronous work that completed and needs
// to re-enter the view tree. It is the only structure in the core shared
// between threads: any number of producers append, and the single driver
// thread drains. Both operations run under one mutex.
type WakeQueue struct {
	mu      sync.Mutex
	pending []id.Path
}

// NewWakeQueue creates an empty wake queue.
func NewWakeQueue() *WakeQueue {
	return &WakeQueue{}
}

// PushWake appends a path and reports whether the queue was empty before the
// append. Only the producer that observes the empty-to-non-empty transition
// needs to signal the platform's idle-wake primitive; later producers can
// rely on the drain that signal already guarantees.
func (q *WakeQueue) PushWake(path id.Path) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	wasEmpty := len(q.pending) == 0
	q.pending = append(q.pending, path)
	return wasEmpty
}

// Take removes and returns all pending paths, leaving the queue empty.
func (q *WakeQueue) Take() []id.Path {
	q.mu.Lock()
	defer q.mu.Unlock()
	taken := q.pending
	q.pending = nil
	return taken
}

// Waker lets one node's asynchronous work re-enter the tree. It pairs the
// node's id path with the shared wake queue and the platform idle handle; a
// producer holds a Waker, never the queue or the tree directly.
type Waker struct {
	path  id.Path
	queue *WakeQueue
	idle  platform.IdleHandle
}

// NewWaker creates a waker for the node at path. idle may be nil when no
// platform connection exists yet; wakes are still queued and picked up by the
// next drain.
func NewWaker(path id.Path, queue *WakeQueue, idle platform.IdleHandle) *Waker {
	return &Waker{path: path.Clone(), queue: queue, idle: idle}
}

// Wake queues an async-wake for the owning node and, when the queue was
// empty, signals the platform to schedule a drain. Safe to call from any
// goroutine.
func (w *Waker) Wake() {
	if w.queue.PushWake(w.path.Clone()) && w.idle != nil {
		w.idle.ScheduleIdle()
	}
}
