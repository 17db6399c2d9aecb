package view

import (
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/widget"
)

// Button is a tappable button. OnPress runs on the owner thread with
// exclusive access to the application data, both for platform presses and
// for async wakes targeted at the button.
type Button[T any] struct {
	// Label is the text displayed on the button.
	Label string
	// OnPress is called when the button is activated.
	OnPress func(app *T)
}

// ButtonOf creates a button with the given label and press handler.
func ButtonOf[T any](label string, onPress func(app *T)) Button[T] {
	return Button[T]{Label: label, OnPress: onPress}
}

func (v Button[T]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	node := id.Next()
	cx.Push(node)
	element := widget.NewButton(cx.Path(), v.Label)
	cx.Pop()
	return node, nil, element
}

func (v Button[T]) Rebuild(cx *Cx, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	prevButton, ok := prev.(Button[T])
	element, okElement := widget.Downcast[*widget.Button](pod)
	if !ok || !okElement {
		return buildInto(cx, v, node, state, pod)
	}
	// The callback is re-bound implicitly: Event always dispatches through
	// the current cycle's view.
	if v.Label != prevButton.Label {
		element.SetLabel(v.Label)
		return true
	}
	return false
}

func (v Button[T]) Event(path id.Path, state any, body any, app *T) {
	if len(path) != 0 {
		return // stale
	}
	if v.OnPress != nil {
		v.OnPress(app)
	}
}
