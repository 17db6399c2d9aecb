// Package view provides the declarative side of the framework: immutable
// view values produced fresh each cycle by application logic, diffed against
// the previous cycle's views to mutate the retained widget tree in place.
//
// Reconciliation is driven by tree position plus concrete type identity.
// List-like views (Column) diff same-typed siblings positionally: reordering
// them moves persisted state across positions. That is an accepted tradeoff,
// not a defect; a keyed variant would be an additive extension.
package view

import (
	"reflect"

	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/widget"
)

// View describes one node of the UI as a pure function of application data
// of type T. Views are immutable and rebuilt every cycle; the persisted
// counterpart is the (Id, State, element) triple created by Build and
// patched by Rebuild.
type View[T any] interface {
	// Build allocates a fresh identity, fresh persisted state, and a fresh
	// retained element for this node and its subtree. Called exactly once
	// per logical node, at first appearance.
	Build(cx *Cx) (id.Id, any, widget.Widget)

	// Rebuild diffs the receiver against prev, which is guaranteed by the
	// caller to have the same concrete type, and patches state and the
	// element inside pod in place. It returns whether anything observable
	// changed, so dirtiness propagates upward.
	Rebuild(cx *Cx, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool

	// Event routes a payload to the descendant named by path (relative to
	// this node's children; an empty path targets this node) and applies
	// any resulting mutation to app. A path that no longer resolves is a
	// stale event and is silently discarded.
	Event(path id.Path, state any, body any, app *T)
}

// UpdateChild reconciles next against prev for the node held by pod. When
// the two views share a concrete type the diff is applied in place;
// otherwise the old subtree is torn down and next is built fresh, with a
// new id, state and element. The changed pod is marked so the next update
// phase descends into it.
func UpdateChild[T any](cx *Cx, next, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	if prev != nil && reflect.TypeOf(next) == reflect.TypeOf(prev) {
		changed := next.Rebuild(cx, prev, node, state, pod)
		if changed {
			pod.RequestUpdate()
		}
		return changed
	}
	return buildInto(cx, next, node, state, pod)
}

// buildInto discards whatever the triple currently holds and builds next
// from scratch. The old state and element are dropped; the node gets a
// fresh id, equivalent to a first build at this position.
func buildInto[T any](cx *Cx, next View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	newID, newState, element := next.Build(cx)
	*node = newID
	*state = newState
	pod.SetWidget(element)
	return true
}
