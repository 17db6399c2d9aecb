package widget

import (
	"golang.org/x/image/font"

	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/rendering"
)

// Button padding around the label, in pixels.
const (
	buttonPadX = 8
	buttonPadY = 4
)

var (
	buttonFill        = rendering.RGB(0x45, 0x46, 0x41)
	buttonPressedFill = rendering.RGB(0x5c, 0x5d, 0x58)
)

// Button is a tappable widget. A completed press inside its bounds enqueues
// a ButtonPressed event targeted at the button's id path; the owning view
// routes it to the application callback.
type Button struct {
	path    id.Path
	label   string
	face    font.Face
	size    rendering.Size
	pressed bool
	dirty   bool
}

// NewButton creates a button routing press events to path.
func NewButton(path id.Path, label string) *Button {
	return &Button{path: path.Clone(), label: label, face: rendering.DefaultFace()}
}

// Label returns the current label.
func (w *Button) Label() string {
	return w.label
}

// SetLabel replaces the label.
func (w *Button) SetLabel(label string) {
	if label == w.label {
		return
	}
	w.label = label
	w.dirty = true
}

func (w *Button) Update(cx *UpdateCx) {
	if w.dirty {
		w.dirty = false
		cx.RequestLayout()
		cx.RequestPaint()
	}
}

func (w *Button) Measure(cx *LayoutCx) (min, max rendering.Size) {
	labelSize := rendering.MeasureText(w.label, w.face)
	size := rendering.Size{
		Width:  labelSize.Width + 2*buttonPadX,
		Height: labelSize.Height + 2*buttonPadY,
	}
	return size, size
}

func (w *Button) Layout(cx *LayoutCx, proposed rendering.Size) rendering.Size {
	labelSize := rendering.MeasureText(w.label, w.face)
	w.size = rendering.Size{
		Width:  labelSize.Width + 2*buttonPadX,
		Height: labelSize.Height + 2*buttonPadY,
	}.Clamp(proposed)
	return w.size
}

func (w *Button) PreparePaint(cx *LayoutCx, visible rendering.Rect) {}

func (w *Button) Paint(cx *PaintCx) {
	fill := buttonFill
	if w.pressed {
		fill = buttonPressedFill
	}
	cx.Canvas().FillRect(w.size.ToRect(), fill)
	cx.Canvas().DrawText(w.label, rendering.Offset{X: buttonPadX, Y: buttonPadY}, rendering.ColorWhite)
}

func (w *Button) Event(cx *EventCx, ev *RawEvent) {
	inside := w.size.ToRect().Contains(ev.Position)
	switch ev.Kind {
	case RawPointerDown:
		if inside {
			w.pressed = true
			cx.RequestPaint()
		}
	case RawPointerUp:
		if w.pressed {
			w.pressed = false
			cx.RequestPaint()
			if inside {
				cx.PushEvent(event.New(w.path, ButtonPressed{}))
			}
		}
	}
}
