// Package widget provides the retained, mutable counterpart to the view
// tree: the Widget interface, the Pod wrapper that carries per-cycle
// bookkeeping, and the context types threaded through the
// update → measure → layout → prepare-paint → paint pipeline.
package widget

import "github.com/go-weft/weft/pkg/rendering"

// Widget is a retained element. Exactly one widget exists per live id path;
// it is created by a view's Build and mutated in place by Rebuild.
//
// Update and PreparePaint may enqueue events through their context, which
// makes the driver abandon the current pipeline pass, drain events, rebuild
// the view tree, and restart. Paint is terminal and side-effect free: it runs
// only on a pass that produced no new events and must never enqueue any.
type Widget interface {
	// Update pushes pending property changes into the widget.
	Update(cx *UpdateCx)

	// Measure computes the widget's minimum and maximum intrinsic size,
	// bottom-up.
	Measure(cx *LayoutCx) (min, max rendering.Size)

	// Layout assigns the final size top-down given the parent's proposal and
	// returns the size taken.
	Layout(cx *LayoutCx, proposed rendering.Size) rendering.Size

	// PreparePaint lets the widget react to its final visible rectangle in
	// local coordinates, before paint.
	PreparePaint(cx *LayoutCx, visible rendering.Rect)

	// Paint renders the widget's final state.
	Paint(cx *PaintCx)

	// Event handles a raw platform event in local coordinates.
	Event(cx *EventCx, ev *RawEvent)
}

// RawEventKind discriminates raw platform events.
type RawEventKind int

const (
	RawPointerDown RawEventKind = iota
	RawPointerUp
	RawPointerMove
	RawScroll
)

// RawEvent is a platform input event, normalized by the driver. Position is
// in the coordinate space of the widget receiving it; Pod translates as the
// event descends the tree.
type RawEvent struct {
	Kind     RawEventKind
	Position rendering.Offset
	// Delta carries scroll distance for RawScroll events.
	Delta rendering.Offset
}

// PointerDown creates a pointer-press event at the given position.
func PointerDown(position rendering.Offset) RawEvent {
	return RawEvent{Kind: RawPointerDown, Position: position}
}

// PointerUp creates a pointer-release event at the given position.
func PointerUp(position rendering.Offset) RawEvent {
	return RawEvent{Kind: RawPointerUp, Position: position}
}

// ScrollBy creates a scroll event with the given delta at a position.
func ScrollBy(position, delta rendering.Offset) RawEvent {
	return RawEvent{Kind: RawScroll, Position: position, Delta: delta}
}

// ButtonPressed is the payload a button widget routes to its view when
// a press completes inside its bounds.
type ButtonPressed struct{}

// SizeChanged is the payload a layout-observing widget routes to its view
// when its laid-out bounds change.
type SizeChanged struct {
	Size rendering.Size
}

// VisibleChanged is the payload a scroll widget routes to its view when the
// visible content rectangle changes during prepare-paint.
type VisibleChanged struct {
	Visible rendering.Rect
}
