package widget

import "github.com/go-weft/weft/pkg/rendering"

// Column stacks children vertically, each at its intrinsic height, all
// aligned to the left edge.
type Column struct {
	children []*Pod
	spacing  float64
}

// NewColumn creates a column over the given child pods.
func NewColumn(children []*Pod) *Column {
	return &Column{children: children}
}

// SetSpacing sets the vertical gap between children.
func (w *Column) SetSpacing(spacing float64) {
	w.spacing = spacing
}

// Len returns the number of children.
func (w *Column) Len() int {
	return len(w.children)
}

// ChildPod returns the pod at index i.
func (w *Column) ChildPod(i int) *Pod {
	return w.children[i]
}

// AppendChild adds a pod after the existing children.
func (w *Column) AppendChild(pod *Pod) {
	w.children = append(w.children, pod)
}

// Truncate drops all children at index n and beyond, releasing their
// widgets and render state.
func (w *Column) Truncate(n int) {
	if n >= len(w.children) {
		return
	}
	for i := n; i < len(w.children); i++ {
		w.children[i] = nil
	}
	w.children = w.children[:n]
}

func (w *Column) Update(cx *UpdateCx) {
	for _, child := range w.children {
		child.Update(cx)
	}
}

func (w *Column) Measure(cx *LayoutCx) (min, max rendering.Size) {
	for i, child := range w.children {
		childMin, childMax := child.Measure(cx)
		min.Height += childMin.Height
		max.Height += childMax.Height
		if i > 0 {
			min.Height += w.spacing
			max.Height += w.spacing
		}
		if childMin.Width > min.Width {
			min.Width = childMin.Width
		}
		if childMax.Width > max.Width {
			max.Width = childMax.Width
		}
	}
	return min, max
}

func (w *Column) Layout(cx *LayoutCx, proposed rendering.Size) rendering.Size {
	y := 0.0
	width := 0.0
	for i, child := range w.children {
		if i > 0 {
			y += w.spacing
		}
		remaining := rendering.Size{Width: proposed.Width, Height: proposed.Height - y}
		childSize := child.Layout(cx, remaining)
		child.SetOrigin(rendering.Offset{Y: y})
		y += childSize.Height
		if childSize.Width > width {
			width = childSize.Width
		}
	}
	return rendering.Size{Width: width, Height: y}.Clamp(proposed)
}

func (w *Column) PreparePaint(cx *LayoutCx, visible rendering.Rect) {
	for _, child := range w.children {
		origin := child.State.Origin
		local := visible.Translate(-origin.X, -origin.Y).Intersect(child.State.Size.ToRect())
		child.PreparePaint(cx, local)
	}
}

func (w *Column) Paint(cx *PaintCx) {
	for _, child := range w.children {
		child.Paint(cx)
	}
}

func (w *Column) Event(cx *EventCx, ev *RawEvent) {
	for _, child := range w.children {
		if child.Bounds().Contains(ev.Position) {
			child.Event(cx, ev)
			return
		}
	}
}
