package view

import (
	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/widget"
)

// OnWake connects asynchronous work to the tree. Start receives the node's
// waker exactly once, at first build; the producer may call Wake from any
// goroutine, and each drained wake invokes Handler on the owner thread with
// exclusive access to the application data. The view renders nothing.
type OnWake[T any] struct {
	// Start is handed the waker at build time. Typically it launches a
	// goroutine that calls waker.Wake when background work completes.
	Start func(waker *event.Waker)
	// Handler is called for every drained wake targeted at this node.
	Handler func(app *T)
}

// OnWakeOf creates a wake subscription view.
func OnWakeOf[T any](start func(waker *event.Waker), handler func(app *T)) OnWake[T] {
	return OnWake[T]{Start: start, Handler: handler}
}

func (v OnWake[T]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	node := id.Next()
	cx.Push(node)
	waker := cx.Waker()
	cx.Pop()
	if v.Start != nil {
		v.Start(waker)
	}
	return node, nil, widget.NewEmpty()
}

func (v OnWake[T]) Rebuild(cx *Cx, prev View[T], node *id.Id, state *any, pod *widget.Pod) bool {
	if _, ok := prev.(OnWake[T]); !ok {
		return buildInto(cx, v, node, state, pod)
	}
	return false
}

func (v OnWake[T]) Event(path id.Path, state any, body any, app *T) {
	if len(path) != 0 {
		return // stale
	}
	if _, ok := body.(event.AsyncWake); ok && v.Handler != nil {
		v.Handler(app)
	}
}
