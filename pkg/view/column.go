package view

import (
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/widget"
)

// Column stacks children vertically.
//
// Children are diffed positionally: a child at index i is reconciled against
// the previous cycle's child at index i when their concrete types match.
// Without explicit keys, reordering same-typed siblings moves their
// persisted state across positions.
type Column[T any] struct {
	// Children are the stacked views, top to bottom.
	Children []View[T]
	// Spacing is the vertical gap between children.
	Spacing float64
}

// ColumnOf creates a column over the given children.
func ColumnOf[T any](children ...View[T]) Column[T] {
	return Column[T]{Children: children}
}

// columnState tracks the id and persisted state of each live child, aligned
// by index with the column widget's pods.
type columnState[T any] struct {
	ids    []id.Id
	states []any
}

func (v Column[T]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	node := id.Next()
	cx.Push(node)
	st := &columnState[T]{
		ids:    make([]id.Id, 0, len(v.Children)),
		states: make([]any, 0, len(v.Children)),
	}
	pods := make([]*widget.Pod, 0, len(v.Children))
	for _, child := range v.Children {
		childID, childState, childElement := child.Build(cx)
		st.ids = append(st.ids, childID)
		st.states = append(st.states, childState)
		pods = append(pods, widget.NewPod(childElement))
	}
	cx.Pop()
	element := widget.NewColumn(pods)
	element.SetSpacing(v.Spacing)
	return node, st, element
}

func (v Column[T]) Rebuild(cx *Cx, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	prevColumn, ok := prev.(Column[T])
	element, okElement := widget.Downcast[*widget.Column](pod)
	st, okState := (*state).(*columnState[T])
	if !ok || !okElement || !okState {
		return buildInto(cx, v, node, state, pod)
	}
	changed := false
	if v.Spacing != prevColumn.Spacing {
		element.SetSpacing(v.Spacing)
		changed = true
	}
	cx.Push(*node)
	for i, child := range v.Children {
		if i < len(st.ids) && i < len(prevColumn.Children) {
			if UpdateChild(cx, child, prevColumn.Children[i], &st.ids[i], &st.states[i], element.ChildPod(i)) {
				changed = true
			}
			continue
		}
		childID, childState, childElement := child.Build(cx)
		st.ids = append(st.ids, childID)
		st.states = append(st.states, childState)
		element.AppendChild(widget.NewPod(childElement))
		changed = true
	}
	if len(v.Children) < len(st.ids) {
		element.Truncate(len(v.Children))
		st.ids = st.ids[:len(v.Children)]
		st.states = st.states[:len(v.Children)]
		changed = true
	}
	cx.Pop()
	return changed
}

func (v Column[T]) Event(path id.Path, state any, body any, app *T) {
	st, ok := state.(*columnState[T])
	if !ok || len(path) == 0 {
		return // stale
	}
	for i, childID := range st.ids {
		if childID == path[0] && i < len(v.Children) {
			v.Children[i].Event(path[1:], st.states[i], body, app)
			return
		}
	}
	// Target removed since the event was produced; drop it.
}
