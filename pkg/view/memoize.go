package view

import (
	"reflect"

	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/widget"
)

// Memoize skips rebuilding its content while Value compares deeply equal
// across cycles. The memoized child keeps the wrapped node's id, so events
// route straight through.
type Memoize[T any] struct {
	// Value is the data the content depends on.
	Value any
	// Content builds the wrapped view.
	Content func() View[T]
}

// MemoizeOf creates a memoized view rebuilt only when value changes.
func MemoizeOf[T any](value any, content func() View[T]) Memoize[T] {
	return Memoize[T]{Value: value, Content: content}
}

type memoizeState[T any] struct {
	child      View[T]
	childState any
}

func (v Memoize[T]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	child := v.Content()
	childID, childState, element := child.Build(cx)
	return childID, &memoizeState[T]{child: child, childState: childState}, element
}

func (v Memoize[T]) Rebuild(cx *Cx, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	prevMemoize, ok := prev.(Memoize[T])
	st, okState := (*state).(*memoizeState[T])
	if !ok || !okState {
		return buildInto(cx, v, node, state, pod)
	}
	if reflect.DeepEqual(v.Value, prevMemoize.Value) {
		return false
	}
	child := v.Content()
	changed := UpdateChild(cx, child, st.child, node, &st.childState, pod)
	st.child = child
	return changed
}

func (v Memoize[T]) Event(path id.Path, state any, body any, app *T) {
	st, ok := state.(*memoizeState[T])
	if !ok || st.child == nil {
		return
	}
	st.child.Event(path, st.childState, body, app)
}
