package view

import (
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/rendering"
	"github.com/go-weft/weft/pkg/widget"
)

// ScrollView materializes content lazily from the visible rectangle
// reported during prepare-paint, re-materializing when scrolling changes
// the rectangle.
type ScrollView[T any] struct {
	// Content builds the child covering the visible content rectangle.
	Content func(visible rendering.Rect) View[T]
}

// ScrollViewOf creates a scroll view with the given content builder.
func ScrollViewOf[T any](content func(visible rendering.Rect) View[T]) ScrollView[T] {
	return ScrollView[T]{Content: content}
}

type scrollState[T any] struct {
	visible    *rendering.Rect
	child      View[T]
	childID    id.Id
	childState any
}

func (v ScrollView[T]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	node := id.Next()
	cx.Push(node)
	element := widget.NewScroll(cx.Path())
	cx.Pop()
	return node, &scrollState[T]{}, element
}

func (v ScrollView[T]) Rebuild(cx *Cx, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	_, ok := prev.(ScrollView[T])
	element, okElement := widget.Downcast[*widget.Scroll](pod)
	st, okState := (*state).(*scrollState[T])
	if !ok || !okElement || !okState {
		return buildInto(cx, v, node, state, pod)
	}
	if st.visible == nil || v.Content == nil {
		return false
	}
	next := v.Content(*st.visible)
	cx.Push(*node)
	defer cx.Pop()
	if st.child == nil {
		childID, childState, childElement := next.Build(cx)
		st.childID = childID
		st.childState = childState
		st.child = next
		element.SetChild(widget.NewPod(childElement))
		return true
	}
	changed := UpdateChild(cx, next, st.child, &st.childID, &st.childState, element.ChildPod())
	st.child = next
	return changed
}

func (v ScrollView[T]) Event(path id.Path, state any, body any, app *T) {
	st, ok := state.(*scrollState[T])
	if !ok {
		return
	}
	if len(path) == 0 {
		if visibleChanged, ok := body.(widget.VisibleChanged); ok {
			visible := visibleChanged.Visible
			st.visible = &visible
		}
		return
	}
	if st.child != nil && path[0] == st.childID {
		st.child.Event(path[1:], st.childState, body, app)
	}
}
