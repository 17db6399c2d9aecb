package widget

import (
	"math"

	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/rendering"
)

// Scroll is a vertically scrollable viewport over lazily materialized
// content. During prepare-paint it reports the visible content rectangle to
// its view; the view materializes only the content covering that rectangle.
// A changed rectangle abandons the pass, so the restarted pass paints
// freshly materialized content.
type Scroll struct {
	path          id.Path
	child         *Pod
	offset        float64
	contentHeight float64
	viewport      rendering.Size
	notified      rendering.Rect
	haveNotified  bool
}

// NewScroll creates a scroll viewport routing visibility events to path.
func NewScroll(path id.Path) *Scroll {
	return &Scroll{path: path.Clone()}
}

// HasChild reports whether content has been materialized.
func (w *Scroll) HasChild() bool {
	return w.child != nil
}

// ChildPod returns the materialized content, or nil.
func (w *Scroll) ChildPod() *Pod {
	return w.child
}

// SetChild installs the materialized content.
func (w *Scroll) SetChild(pod *Pod) {
	w.child = pod
}

// Offset returns the current scroll offset.
func (w *Scroll) Offset() float64 {
	return w.offset
}

func (w *Scroll) Update(cx *UpdateCx) {
	if w.child != nil {
		w.child.Update(cx)
	}
}

func (w *Scroll) Measure(cx *LayoutCx) (min, max rendering.Size) {
	if w.child != nil {
		return w.child.Measure(cx)
	}
	return rendering.Size{}, rendering.Size{}
}

func (w *Scroll) Layout(cx *LayoutCx, proposed rendering.Size) rendering.Size {
	w.viewport = proposed
	if w.child != nil {
		childSize := w.child.Layout(cx, rendering.Size{
			Width:  proposed.Width,
			Height: math.Inf(1),
		})
		w.contentHeight = childSize.Height
		w.clampOffset()
		w.child.SetOrigin(rendering.Offset{Y: -w.offset})
	}
	return proposed
}

func (w *Scroll) PreparePaint(cx *LayoutCx, visible rendering.Rect) {
	content := rendering.RectFromLTWH(0, w.offset, w.viewport.Width, w.viewport.Height)
	if !w.haveNotified || content != w.notified {
		w.notified = content
		w.haveNotified = true
		cx.PushEvent(event.New(w.path, VisibleChanged{Visible: content}))
	}
	if w.child != nil {
		local := visible.Translate(0, w.offset)
		w.child.PreparePaint(cx, local)
	}
}

func (w *Scroll) Paint(cx *PaintCx) {
	if w.child != nil {
		w.child.Paint(cx)
	}
}

func (w *Scroll) Event(cx *EventCx, ev *RawEvent) {
	if ev.Kind == RawScroll {
		previous := w.offset
		w.offset += ev.Delta.Y
		w.clampOffset()
		if w.offset != previous {
			if w.child != nil {
				w.child.SetOrigin(rendering.Offset{Y: -w.offset})
			}
			cx.RequestLayout()
			cx.RequestPaint()
		}
		return
	}
	if w.child != nil && w.child.Bounds().Contains(ev.Position) {
		w.child.Event(cx, ev)
	}
}

func (w *Scroll) clampOffset() {
	limit := math.Max(0, w.contentHeight-w.viewport.Height)
	w.offset = math.Min(math.Max(w.offset, 0), limit)
}
