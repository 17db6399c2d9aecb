package widget

import "github.com/go-weft/weft/pkg/rendering"

// Empty is a zero-size widget with no visual output. Views that exist only
// to route events (async wake subscribers) use it as their element.
type Empty struct{}

// NewEmpty creates an empty widget.
func NewEmpty() *Empty {
	return &Empty{}
}

func (w *Empty) Update(cx *UpdateCx) {}

func (w *Empty) Measure(cx *LayoutCx) (min, max rendering.Size) {
	return rendering.Size{}, rendering.Size{}
}

func (w *Empty) Layout(cx *LayoutCx, proposed rendering.Size) rendering.Size {
	return rendering.Size{}
}

func (w *Empty) PreparePaint(cx *LayoutCx, visible rendering.Rect) {}

func (w *Empty) Paint(cx *PaintCx) {}

func (w *Empty) Event(cx *EventCx, ev *RawEvent) {}
