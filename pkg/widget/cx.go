package widget

import (
	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/platform"
	"github.com/go-weft/weft/pkg/rendering"
)

// CxState is the per-pass state shared by every context in one pipeline
// pass: the window handle and the driver's pending-event buffer. A pass that
// enqueued events is abandoned and restarted after the events drain.
type CxState struct {
	window platform.WindowHandle
	events *[]event.Event
}

// NewCxState creates the shared pass state. window may be nil before the
// platform connection exists.
func NewCxState(window platform.WindowHandle, events *[]event.Event) *CxState {
	return &CxState{window: window, events: events}
}

// Window returns the platform window handle, or nil.
func (c *CxState) Window() platform.WindowHandle {
	return c.window
}

// PushEvent appends an event to the driver's pending queue.
func (c *CxState) PushEvent(ev event.Event) {
	*c.events = append(*c.events, ev)
}

// HasEvents reports whether the pass enqueued any events.
func (c *CxState) HasEvents() bool {
	return len(*c.events) > 0
}

// UpdateCx is the context for the update phase.
type UpdateCx struct {
	state       *CxState
	widgetState *State
}

// NewUpdateCx creates an update context rooted at the given widget state.
func NewUpdateCx(state *CxState, widgetState *State) *UpdateCx {
	return &UpdateCx{state: state, widgetState: widgetState}
}

// PushEvent enqueues an event, abandoning the current pipeline pass.
func (c *UpdateCx) PushEvent(ev event.Event) {
	c.state.PushEvent(ev)
}

// RequestLayout marks the current widget's geometry stale.
func (c *UpdateCx) RequestLayout() {
	c.widgetState.Request(FlagRequestLayout)
}

// RequestPaint marks the current widget for repaint.
func (c *UpdateCx) RequestPaint() {
	c.widgetState.Request(FlagRequestPaint)
}

// LayoutCx is the context for the measure, layout and prepare-paint phases.
type LayoutCx struct {
	state       *CxState
	widgetState *State
}

// NewLayoutCx creates a layout context rooted at the given widget state.
func NewLayoutCx(state *CxState, widgetState *State) *LayoutCx {
	return &LayoutCx{state: state, widgetState: widgetState}
}

// PushEvent enqueues an event, abandoning the current pipeline pass.
func (c *LayoutCx) PushEvent(ev event.Event) {
	c.state.PushEvent(ev)
}

// PaintCx is the context for the terminal paint phase. It deliberately has
// no PushEvent: paint never re-enters the pipeline.
type PaintCx struct {
	state       *CxState
	widgetState *State
	canvas      rendering.Canvas
}

// NewPaintCx creates a paint context drawing into canvas.
func NewPaintCx(state *CxState, widgetState *State, canvas rendering.Canvas) *PaintCx {
	return &PaintCx{state: state, widgetState: widgetState, canvas: canvas}
}

// Canvas returns the surface being painted.
func (c *PaintCx) Canvas() rendering.Canvas {
	return c.canvas
}

// Size returns the widget's final laid-out size.
func (c *PaintCx) Size() rendering.Size {
	return c.widgetState.Size
}

// EventCx is the context for raw platform event dispatch.
type EventCx struct {
	state       *CxState
	widgetState *State
}

// NewEventCx creates an event context rooted at the given widget state.
func NewEventCx(state *CxState, widgetState *State) *EventCx {
	return &EventCx{state: state, widgetState: widgetState}
}

// PushEvent enqueues a targeted event for the next app-logic cycle.
func (c *EventCx) PushEvent(ev event.Event) {
	c.state.PushEvent(ev)
}

// RequestLayout marks the current widget's geometry stale.
func (c *EventCx) RequestLayout() {
	c.widgetState.Request(FlagRequestLayout)
}

// RequestPaint marks the current widget for repaint.
func (c *EventCx) RequestPaint() {
	c.widgetState.Request(FlagRequestPaint)
}
