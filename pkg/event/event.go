// Package event defines the targeted event value routed through the view
// tree, and the cross-thread wake queue that feeds asynchronous completions
// back into the single-threaded driver.
package event

import "github.com/go-weft/weft/pkg/id"

// Event carries a typed payload to the node named by Path. Events are
// transient: they are produced by the platform layer or by wake processing
// and consumed within one render cycle.
type Event struct {
	Path id.Path
	Body any
}

// New creates an event targeting the node at path.
func New(path id.Path, body any) Event {
	return Event{Path: path, Body: body}
}

// AsyncWake is the payload delivered to a node whose asynchronous work
// completed and re-entered the tree through the wake queue.
type AsyncWake struct{}
