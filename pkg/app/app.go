// Package app provides the driver that owns the view, state and widget
// trees and runs the render cycle: drain pending events into the view tree,
// run application logic, diff the fresh view against the previous one, and
// push the result through the widget pipeline until it reaches a fixed
// point.
//
// Everything the driver owns is confined to a single owner thread. The only
// cross-thread structure is the wake queue; asynchronous work re-enters the
// tree exclusively by pushing an id path there.
package app

import (
	"github.com/go-weft/weft/pkg/config"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/platform"
	"github.com/go-weft/weft/pkg/rendering"
	"github.com/go-weft/weft/pkg/view"
	"github.com/go-weft/weft/pkg/widget"
)

// DefaultBackground is the viewport fill painted before the retained tree.
var DefaultBackground = rendering.RGB(0x27, 0x28, 0x22)

// App drives one application: it owns the application data, the current
// view and its persisted state, the retained widget tree, and the pending
// event queue. All methods must be called from the single owner thread.
type App[T any] struct {
	data  T
	logic func(app *T) view.View[T]

	// view/node/state are nil/zero until the lazy first build.
	root  view.View[T]
	node  id.Id
	state any

	rootPod   *widget.Pod
	rootState widget.State
	events    []event.Event

	window platform.WindowHandle
	size   rendering.Size

	background  rendering.Color
	maxRestarts int

	cx        *view.Cx
	wakeQueue *event.WakeQueue
}

// New creates an app over the given data and application logic. The logic
// function is invoked exactly once per render cycle and never concurrently
// with itself.
func New[T any](data T, logic func(app *T) view.View[T]) *App[T] {
	queue := event.NewWakeQueue()
	return &App[T]{
		data:        data,
		logic:       logic,
		background:  DefaultBackground,
		maxRestarts: config.DefaultMaxRestarts,
		cx:          view.NewCx(queue),
		wakeQueue:   queue,
	}
}

// ApplyConfig installs resolved configuration values.
func (a *App[T]) ApplyConfig(resolved *config.Resolved) {
	a.background = resolved.Background
	a.maxRestarts = resolved.MaxRestarts
	a.size = resolved.WindowSize
}

// Connect attaches the platform window. Wakers created afterward signal its
// idle primitive.
func (a *App[T]) Connect(window platform.WindowHandle) {
	a.window = window
	a.cx.SetIdleHandle(window.IdleHandle())
}

// SetSize records the current viewport size, the proposed size for root
// layout.
func (a *App[T]) SetSize(size rendering.Size) {
	a.size = size
}

// Data exposes the application data. Owner thread only; the pointer must
// not be retained across an asynchronous suspension point.
func (a *App[T]) Data() *T {
	return &a.data
}

// WakeQueue returns the shared wake queue, for wiring external producers.
func (a *App[T]) WakeQueue() *event.WakeQueue {
	return a.wakeQueue
}

// EnsureApp performs the lazy first build. Deferred until first needed so
// the platform connection can precede it.
func (a *App[T]) EnsureApp() {
	if a.root != nil {
		return
	}
	root := a.logic(&a.data)
	node, state, element := root.Build(a.cx)
	if !a.cx.IsEmpty() {
		errors.Fatal(errors.Contract("app.EnsureApp", "id path imbalance after build"))
	}
	a.root = root
	a.node = node
	a.state = state
	a.rootPod = widget.NewPod(element)
}

// Paint runs the pipeline to a fixed point and paints the terminal pass
// onto canvas. Update and prepare-paint may enqueue events; each time they
// do, the pass is abandoned, events drain through application logic, the
// tree rebuilds, and the pipeline restarts. Paint executes only on a pass
// that produced zero events.
func (a *App[T]) Paint(canvas rendering.Canvas) {
	canvas.Clear(a.background)
	a.EnsureApp()
	for restarts := 0; ; restarts++ {
		if restarts > a.maxRestarts {
			errors.Fatal(errors.Pipeline("app.Paint",
				"no fixed point after %d pipeline restarts", a.maxRestarts))
		}
		cxState := widget.NewCxState(a.window, &a.events)

		updateCx := widget.NewUpdateCx(cxState, &a.rootState)
		a.rootPod.Update(updateCx)
		layoutCx := widget.NewLayoutCx(cxState, &a.rootState)
		a.rootPod.Measure(layoutCx)
		a.rootPod.Layout(layoutCx, a.size)
		if cxState.HasEvents() {
			// Typically a LayoutObserver reporting fresh bounds.
			a.RunAppLogic()
			continue
		}

		visible := a.rootPod.State.Size.ToRect()
		a.rootPod.PreparePaint(layoutCx, visible)
		if cxState.HasEvents() {
			// Typically lazy content materializing for the visible rect.
			a.RunAppLogic()
			continue
		}

		paintCx := widget.NewPaintCx(cxState, &a.rootState, canvas)
		a.rootPod.Paint(paintCx)
		return
	}
}

// WindowEvent normalizes one raw platform event into the widget tree and
// runs an app-logic cycle for whatever the widgets enqueued.
func (a *App[T]) WindowEvent(raw widget.RawEvent) {
	a.EnsureApp()
	cxState := widget.NewCxState(a.window, &a.events)
	eventCx := widget.NewEventCx(cxState, &a.rootState)
	a.rootPod.Event(eventCx, &raw)
	a.RunAppLogic()
}

// WakeAsync drains the wake queue into async-wake events and runs an
// app-logic cycle. Called from the platform's idle callback, on the owner
// thread.
func (a *App[T]) WakeAsync() {
	a.EnsureApp()
	for _, path := range a.wakeQueue.Take() {
		a.events = append(a.events, event.New(path, event.AsyncWake{}))
	}
	a.RunAppLogic()
	if a.window != nil {
		a.window.Invalidate()
	}
}

// RunAppLogic drains pending events through the view tree, invokes the
// application-logic function exactly once for a fresh view, and diffs it
// against the previous cycle's view.
func (a *App[T]) RunAppLogic() {
	pending := a.events
	a.events = nil
	for _, ev := range pending {
		path := ev.Path
		if len(path) > 0 {
			// The root segment identifies the app itself, not a view.
			path = path[1:]
		}
		a.root.Event(path, a.state, ev.Body, &a.data)
	}

	next := a.logic(&a.data)
	if view.UpdateChild(a.cx, next, a.root, &a.node, &a.state, a.rootPod) {
		a.rootPod.RequestUpdate()
	}
	if !a.cx.IsEmpty() {
		errors.Fatal(errors.Contract("app.RunAppLogic", "id path imbalance on rebuild"))
	}
	a.root = next
}
