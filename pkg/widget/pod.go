package widget

import "github.com/go-weft/weft/pkg/rendering"

// Pod wraps exactly one widget with its per-cycle bookkeeping. The retained
// tree is a tree of pods mirroring the view tree's shape at the time of the
// last reconciliation. Pods mediate every pipeline phase for their widget:
// they scope the phase contexts to the widget's own state, translate
// coordinates by the widget's origin, and propagate requested-work flags
// back up to the parent.
type Pod struct {
	State  State
	widget Widget
}

// NewPod wraps a freshly built widget. The new pod requests all phases so
// the first pipeline pass visits it.
func NewPod(w Widget) *Pod {
	pod := &Pod{widget: w}
	pod.State.Request(upwardFlags)
	return pod
}

// Widget returns the wrapped widget.
func (p *Pod) Widget() Widget {
	return p.widget
}

// SetWidget replaces the wrapped widget, as happens when reconciliation
// tears down a structurally incompatible subtree.
func (p *Pod) SetWidget(w Widget) {
	p.widget = w
	p.State.Request(upwardFlags)
}

// Downcast returns the wrapped widget as the concrete type W. The driver
// uses this to detect structural incompatibility between consecutive views.
func Downcast[W Widget](p *Pod) (W, bool) {
	w, ok := p.widget.(W)
	return w, ok
}

// RequestUpdate marks the pod so the next update phase descends into it.
func (p *Pod) RequestUpdate() {
	p.State.Request(FlagRequestUpdate | FlagRequestLayout | FlagRequestPaint)
}

// SetOrigin positions the pod within its parent. Called by container
// widgets during layout.
func (p *Pod) SetOrigin(origin rendering.Offset) {
	p.State.Origin = origin
}

// Bounds returns the pod's rectangle in its parent's coordinate space.
func (p *Pod) Bounds() rendering.Rect {
	return rendering.RectFromLTWH(p.State.Origin.X, p.State.Origin.Y,
		p.State.Size.Width, p.State.Size.Height)
}

// Update runs the update phase on the subtree if it requested one.
func (p *Pod) Update(cx *UpdateCx) {
	if !p.State.Has(FlagRequestUpdate) {
		return
	}
	p.State.clear(FlagRequestUpdate)
	inner := UpdateCx{state: cx.state, widgetState: &p.State}
	p.widget.Update(&inner)
	p.State.mergeUp(cx.widgetState)
}

// Measure computes the subtree's intrinsic size bounds.
func (p *Pod) Measure(cx *LayoutCx) (min, max rendering.Size) {
	inner := LayoutCx{state: cx.state, widgetState: &p.State}
	min, max = p.widget.Measure(&inner)
	p.State.mergeUp(cx.widgetState)
	return min, max
}

// Layout assigns the subtree's final size given the parent's proposal.
func (p *Pod) Layout(cx *LayoutCx, proposed rendering.Size) rendering.Size {
	inner := LayoutCx{state: cx.state, widgetState: &p.State}
	size := p.widget.Layout(&inner, proposed)
	p.State.Size = size
	p.State.clear(FlagRequestLayout)
	p.State.mergeUp(cx.widgetState)
	return size
}

// PreparePaint delivers the final visible rectangle, in local coordinates.
func (p *Pod) PreparePaint(cx *LayoutCx, visible rendering.Rect) {
	inner := LayoutCx{state: cx.state, widgetState: &p.State}
	p.widget.PreparePaint(&inner, visible)
	p.State.mergeUp(cx.widgetState)
}

// Paint renders the subtree translated to its origin.
func (p *Pod) Paint(cx *PaintCx) {
	canvas := cx.canvas
	canvas.Save()
	canvas.Translate(p.State.Origin.X, p.State.Origin.Y)
	inner := PaintCx{state: cx.state, widgetState: &p.State, canvas: canvas}
	p.widget.Paint(&inner)
	canvas.Restore()
	p.State.clear(FlagRequestPaint)
}

// Event delivers a raw platform event, translated into local coordinates.
func (p *Pod) Event(cx *EventCx, ev *RawEvent) {
	local := *ev
	local.Position = ev.Position.Sub(p.State.Origin)
	inner := EventCx{state: cx.state, widgetState: &p.State}
	p.widget.Event(&inner, &local)
	p.State.mergeUp(cx.widgetState)
}
