package widget

import (
	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/rendering"
)

// LayoutObserver reports its laid-out size to its view, which materializes
// the child once the size is known. The first layout pass (and any pass
// after the size changes) enqueues a SizeChanged event, abandoning the
// pipeline pass; the rebuilt tree carries a child built from the final
// bounds and the restarted pass reaches a fixed point.
type LayoutObserver struct {
	path         id.Path
	child        *Pod
	reported     rendering.Size
	haveReported bool
}

// NewLayoutObserver creates an observer routing size events to path.
// The child is absent until the view materializes it.
func NewLayoutObserver(path id.Path) *LayoutObserver {
	return &LayoutObserver{path: path.Clone()}
}

// HasChild reports whether content has been materialized.
func (w *LayoutObserver) HasChild() bool {
	return w.child != nil
}

// ChildPod returns the materialized child, or nil.
func (w *LayoutObserver) ChildPod() *Pod {
	return w.child
}

// SetChild installs the materialized content.
func (w *LayoutObserver) SetChild(pod *Pod) {
	w.child = pod
}

func (w *LayoutObserver) Update(cx *UpdateCx) {
	if w.child != nil {
		w.child.Update(cx)
	}
}

func (w *LayoutObserver) Measure(cx *LayoutCx) (min, max rendering.Size) {
	if w.child != nil {
		return w.child.Measure(cx)
	}
	return rendering.Size{}, rendering.Size{}
}

func (w *LayoutObserver) Layout(cx *LayoutCx, proposed rendering.Size) rendering.Size {
	if w.child != nil {
		w.child.Layout(cx, proposed)
		w.child.SetOrigin(rendering.Offset{})
	}
	if !w.haveReported || w.reported != proposed {
		w.reported = proposed
		w.haveReported = true
		cx.PushEvent(event.New(w.path, SizeChanged{Size: proposed}))
	}
	return proposed
}

func (w *LayoutObserver) PreparePaint(cx *LayoutCx, visible rendering.Rect) {
	if w.child != nil {
		w.child.PreparePaint(cx, visible.Intersect(w.child.State.Size.ToRect()))
	}
}

func (w *LayoutObserver) Paint(cx *PaintCx) {
	if w.child != nil {
		w.child.Paint(cx)
	}
}

func (w *LayoutObserver) Event(cx *EventCx, ev *RawEvent) {
	if w.child != nil && w.child.Bounds().Contains(ev.Position) {
		w.child.Event(cx, ev)
	}
}
