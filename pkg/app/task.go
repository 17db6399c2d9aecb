package app

import (
	"context"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/view"
)

// Task hosts application data and logic on a dedicated goroutine,
// communicating with the render side through request/response channels.
// This keeps view diffing off the thread that owns platform and render
// resources: a Render request snapshots the current view and state and
// sends them to the caller, which diffs on its own thread and must return
// the borrowed pair with ReturnView before requesting another render.
type Task[T any] struct {
	requests  chan taskRequest[T]
	responses chan RenderResponse[T]

	data  T
	logic func(app *T) view.View[T]

	// root/state are borrowed out by Render and restored by ReturnView.
	root  view.View[T]
	state any
	// borrowed guards against a second Render while the pair is out.
	borrowed bool
}

// RenderResponse carries one render snapshot to the caller: the fresh view,
// the previous cycle's view to diff against, and its persisted state.
type RenderResponse[T any] struct {
	Prev      view.View[T]
	View      view.View[T]
	PrevState any
}

type taskRequestKind int

const (
	reqEvents taskRequestKind = iota
	reqRender
	reqReturnView
)

type taskRequest[T any] struct {
	kind   taskRequestKind
	events []event.Event
	view   view.View[T]
	state  any
}

// NewTask creates a task-isolated driver over the given data and logic.
func NewTask[T any](data T, logic func(app *T) view.View[T]) *Task[T] {
	return &Task[T]{
		requests:  make(chan taskRequest[T]),
		responses: make(chan RenderResponse[T]),
		data:      data,
		logic:     logic,
	}
}

// Responses returns the channel render snapshots arrive on.
func (t *Task[T]) Responses() <-chan RenderResponse[T] {
	return t.responses
}

// Run processes requests until ctx is cancelled. It owns the application
// data for its lifetime; no other goroutine may touch it.
func (t *Task[T]) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-t.requests:
			switch req.kind {
			case reqEvents:
				t.dispatchEvents(req.events)
			case reqRender:
				t.render(ctx)
			case reqReturnView:
				t.root = req.view
				t.state = req.state
				t.borrowed = false
			}
		}
	}
}

// SendEvents delivers a batch of events for dispatch through the view tree.
func (t *Task[T]) SendEvents(ctx context.Context, events []event.Event) error {
	return t.send(ctx, taskRequest[T]{kind: reqEvents, events: events})
}

// RequestRender asks the task to run application logic and emit a
// RenderResponse.
func (t *Task[T]) RequestRender(ctx context.Context) error {
	return t.send(ctx, taskRequest[T]{kind: reqRender})
}

// ReturnView gives back the view/state pair borrowed by the previous
// render, after the caller finished diffing. Skipping this before the next
// RequestRender is a fatal usage error: the task-local view and state would
// be permanently absent.
func (t *Task[T]) ReturnView(ctx context.Context, root view.View[T], state any) error {
	return t.send(ctx, taskRequest[T]{kind: reqReturnView, view: root, state: state})
}

func (t *Task[T]) send(ctx context.Context, req taskRequest[T]) error {
	select {
	case t.requests <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Task[T]) dispatchEvents(events []event.Event) {
	if t.root == nil {
		// No built view yet (or it is borrowed out); events routed now
		// would be stale either way.
		return
	}
	for _, ev := range events {
		path := ev.Path
		if len(path) > 0 {
			path = path[1:]
		}
		t.root.Event(path, t.state, ev.Body, &t.data)
	}
}

func (t *Task[T]) render(ctx context.Context) {
	if t.borrowed {
		errors.Fatal(errors.Contract("app.Task.render",
			"render requested while view/state still borrowed; missing ReturnView"))
	}
	next := t.logic(&t.data)
	response := RenderResponse[T]{
		Prev:      t.root,
		View:      next,
		PrevState: t.state,
	}
	t.root = nil
	t.state = nil
	t.borrowed = true

	select {
	case t.responses <- response:
	case <-ctx.Done():
		errors.Report(errors.Comm("app.Task.render", "render response dropped: %v", ctx.Err()))
	}
}
