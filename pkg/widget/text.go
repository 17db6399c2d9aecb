package widget

import (
	"golang.org/x/image/font"

	"github.com/go-weft/weft/pkg/rendering"
)

// Text is a single line of styled text.
type Text struct {
	text     string
	color    rendering.Color
	face     font.Face
	measured rendering.Size
	dirty    bool
}

// NewText creates a text widget with the default font face.
func NewText(text string, color rendering.Color) *Text {
	return &Text{text: text, color: color, face: rendering.DefaultFace()}
}

// Text returns the current content.
func (w *Text) Text() string {
	return w.text
}

// SetText replaces the content.
func (w *Text) SetText(text string) {
	if text == w.text {
		return
	}
	w.text = text
	w.dirty = true
}

// SetColor replaces the text color.
func (w *Text) SetColor(color rendering.Color) {
	if color == w.color {
		return
	}
	w.color = color
	w.dirty = true
}

func (w *Text) Update(cx *UpdateCx) {
	if w.dirty {
		w.dirty = false
		cx.RequestLayout()
		cx.RequestPaint()
	}
}

func (w *Text) Measure(cx *LayoutCx) (min, max rendering.Size) {
	w.measured = rendering.MeasureText(w.text, w.face)
	return w.measured, w.measured
}

func (w *Text) Layout(cx *LayoutCx, proposed rendering.Size) rendering.Size {
	return w.measured.Clamp(proposed)
}

func (w *Text) PreparePaint(cx *LayoutCx, visible rendering.Rect) {}

func (w *Text) Paint(cx *PaintCx) {
	cx.Canvas().DrawText(w.text, rendering.Offset{}, w.color)
}

func (w *Text) Event(cx *EventCx, ev *RawEvent) {}
