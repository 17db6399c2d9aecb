package view

import (
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/rendering"
	"github.com/go-weft/weft/pkg/widget"
)

// LayoutObserver materializes its content from the final laid-out size.
// The first pipeline pass after a size change is abandoned while the size
// event round-trips through application logic; content built from the new
// size appears on the restarted pass.
type LayoutObserver[T any] struct {
	// Content builds the child for the given bounds.
	Content func(size rendering.Size) View[T]
}

// LayoutObserverOf creates a layout observer with the given content builder.
func LayoutObserverOf[T any](content func(size rendering.Size) View[T]) LayoutObserver[T] {
	return LayoutObserver[T]{Content: content}
}

type layoutObserverState[T any] struct {
	size       *rendering.Size
	child      View[T]
	childID    id.Id
	childState any
}

func (v LayoutObserver[T]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	node := id.Next()
	cx.Push(node)
	element := widget.NewLayoutObserver(cx.Path())
	cx.Pop()
	return node, &layoutObserverState[T]{}, element
}

func (v LayoutObserver[T]) Rebuild(cx *Cx, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	_, ok := prev.(LayoutObserver[T])
	element, okElement := widget.Downcast[*widget.LayoutObserver](pod)
	st, okState := (*state).(*layoutObserverState[T])
	if !ok || !okElement || !okState {
		return buildInto(cx, v, node, state, pod)
	}
	if st.size == nil || v.Content == nil {
		return false
	}
	next := v.Content(*st.size)
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

func (v LayoutObserver[T]) Event(path id.Path, state any, body any, app *T) {
	st, ok := state.(*layoutObserverState[T])
	if !ok {
		return
	}
	if len(path) == 0 {
		if sizeChanged, ok := body.(widget.SizeChanged); ok {
			size := sizeChanged.Size
			st.size = &size
		}
		return
	}
	if st.child != nil && path[0] == st.childID {
		st.child.Event(path[1:], st.childState, body, app)
	}
}
