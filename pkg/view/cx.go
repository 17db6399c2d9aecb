package view

import (
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/platform"
)

// Cx threads the identity path and the wake plumbing through a recursive
// build or rebuild walk. Views that own children push their id before
// descending and pop before returning; every push must be matched by a pop
// within the same call, and the driver verifies the path is empty after a
// full rebuild. An imbalance means a View implementation broke the
// recursion contract and is fatal.
type Cx struct {
	path  id.Path
	queue *event.WakeQueue
	idle  platform.IdleHandle
}

// NewCx creates a build context wired to the shared wake queue.
func NewCx(queue *event.WakeQueue) *Cx {
	return &Cx{queue: queue}
}

// SetIdleHandle attaches the platform's idle-wake primitive. Wakers created
// before the platform connection exists queue silently and are picked up by
// the next drain.
func (c *Cx) SetIdleHandle(idle platform.IdleHandle) {
	c.idle = idle
}

// Push appends node to the current id path.
func (c *Cx) Push(node id.Id) {
	c.path = append(c.path, node)
}

// Pop removes the most recently pushed id.
func (c *Cx) Pop() {
	if len(c.path) == 0 {
		errors.Fatal(errors.Contract("view.Cx.Pop", "pop of empty id path"))
	}
	c.path = c.path[:len(c.path)-1]
}

// IsEmpty reports whether the id path is balanced back to the root.
func (c *Cx) IsEmpty() bool {
	return len(c.path) == 0
}

// Path returns a copy of the current id path.
func (c *Cx) Path() id.Path {
	return c.path.Clone()
}

// Waker returns a waker for the node currently being built. The waker is
// the only handle asynchronous work may keep: it appends to the wake queue
// and signals the idle primitive, never touching the tree.
func (c *Cx) Waker() *event.Waker {
	return event.NewWaker(c.path, c.queue, c.idle)
}
