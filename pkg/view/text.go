package view

import (
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/rendering"
	"github.com/go-weft/weft/pkg/widget"
)

// Text is a single line of text.
type Text[T any] struct {
	// Content is the displayed string.
	Content string
	// Color is the text color. Defaults to white if zero.
	Color rendering.Color
}

// TextOf creates a text view with the default color.
func TextOf[T any](content string) Text[T] {
	return Text[T]{Content: content}
}

func (v Text[T]) color() rendering.Color {
	if v.Color == rendering.ColorTransparent {
		return rendering.ColorWhite
	}
	return v.Color
}

func (v Text[T]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	node := id.Next()
	return node, nil, widget.NewText(v.Content, v.color())
}

func (v Text[T]) Rebuild(cx *Cx, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	prevText, ok := prev.(Text[T])
	element, okElement := widget.Downcast[*widget.Text](pod)
	if !ok || !okElement {
		return buildInto(cx, v, node, state, pod)
	}
	changed := false
	if v.Content != prevText.Content {
		element.SetText(v.Content)
		changed = true
	}
	if v.color() != prevText.color() {
		element.SetColor(v.color())
		changed = true
	}
	return changed
}

func (v Text[T]) Event(path id.Path, state any, body any, app *T) {
	// Text handles no events; anything arriving here is stale.
}
