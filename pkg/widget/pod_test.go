package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/rendering"
)

// runPipeline drives one full pass over the pod, mirroring the driver's
// order, and returns whether the pass enqueued events.
func runPipeline(pod *Pod, proposed rendering.Size, events *[]event.Event, canvas rendering.Canvas) bool {
	var rootState State
	cxState := NewCxState(nil, events)
	pod.Update(NewUpdateCx(cxState, &rootState))
	layoutCx := NewLayoutCx(cxState, &rootState)
	pod.Measure(layoutCx)
	pod.Layout(layoutCx, proposed)
	if cxState.HasEvents() {
		return true
	}
	pod.PreparePaint(layoutCx, pod.State.Size.ToRect())
	if cxState.HasEvents() {
		return true
	}
	pod.Paint(NewPaintCx(cxState, &rootState, canvas))
	return false
}

func TestPodDowncast(t *testing.T) {
	pod := NewPod(NewText("hello", rendering.ColorWhite))

	text, ok := Downcast[*Text](pod)
	require.True(t, ok)
	assert.Equal(t, "hello", text.Text())

	_, ok = Downcast[*Button](pod)
	assert.False(t, ok)
}

func TestPodUpdateGatedOnRequestFlag(t *testing.T) {
	text := NewText("a", rendering.ColorWhite)
	pod := NewPod(text)
	var events []event.Event
	canvas := rendering.NewDisplayListCanvas()

	require.False(t, runPipeline(pod, rendering.Size{Width: 100, Height: 100}, &events, canvas))
	assert.False(t, pod.State.Has(FlagRequestUpdate), "first pass absorbs the fresh-pod flags")

	// A mutation without RequestUpdate is not picked up...
	text.SetText("b")
	var rootState State
	cxState := NewCxState(nil, &events)
	pod.Update(NewUpdateCx(cxState, &rootState))
	assert.False(t, rootState.Has(FlagRequestLayout))

	// ...but is once the pod is marked.
	pod.RequestUpdate()
	pod.Update(NewUpdateCx(cxState, &rootState))
	assert.True(t, rootState.Has(FlagRequestLayout), "child flags propagate bottom-up")
	assert.True(t, rootState.Has(FlagRequestPaint))
}

func TestPodPaintTranslatesToOrigin(t *testing.T) {
	pod := NewPod(NewText("x", rendering.ColorWhite))
	var events []event.Event
	var rootState State
	cxState := NewCxState(nil, &events)
	layoutCx := NewLayoutCx(cxState, &rootState)
	pod.Measure(layoutCx)
	pod.Layout(layoutCx, rendering.Size{Width: 100, Height: 100})
	pod.SetOrigin(rendering.Offset{X: 30, Y: 40})

	canvas := rendering.NewDisplayListCanvas()
	pod.Paint(NewPaintCx(cxState, &rootState, canvas))

	require.Len(t, canvas.Ops(), 1)
	textOp := canvas.Ops()[0].(rendering.TextOp)
	assert.Equal(t, rendering.Offset{X: 30, Y: 40}, textOp.Position)
}

func TestButtonPressEnqueuesEvent(t *testing.T) {
	path := id.Path{1, 2}
	pod := NewPod(NewButton(path, "go"))
	var events []event.Event
	canvas := rendering.NewDisplayListCanvas()
	require.False(t, runPipeline(pod, rendering.Size{Width: 200, Height: 200}, &events, canvas))

	var rootState State
	cxState := NewCxState(nil, &events)
	eventCx := NewEventCx(cxState, &rootState)

	inside := rendering.Offset{X: 2, Y: 2}
	down := PointerDown(inside)
	pod.Event(eventCx, &down)
	up := PointerUp(inside)
	pod.Event(eventCx, &up)

	require.Len(t, events, 1)
	assert.True(t, events[0].Path.Equal(path))
	assert.IsType(t, ButtonPressed{}, events[0].Body)
}

func TestButtonPressOutsideBoundsIgnored(t *testing.T) {
	pod := NewPod(NewButton(id.Path{1}, "go"))
	var events []event.Event
	canvas := rendering.NewDisplayListCanvas()
	require.False(t, runPipeline(pod, rendering.Size{Width: 200, Height: 200}, &events, canvas))

	var rootState State
	cxState := NewCxState(nil, &events)
	eventCx := NewEventCx(cxState, &rootState)

	outside := rendering.Offset{X: 500, Y: 500}
	down := PointerDown(outside)
	pod.Event(eventCx, &down)
	up := PointerUp(outside)
	pod.Event(eventCx, &up)

	assert.Empty(t, events)
}

func TestColumnStacksChildren(t *testing.T) {
	first := NewPod(NewText("one", rendering.ColorWhite))
	second := NewPod(NewText("two", rendering.ColorWhite))
	column := NewColumn([]*Pod{first, second})
	pod := NewPod(column)

	var events []event.Event
	canvas := rendering.NewDisplayListCanvas()
	require.False(t, runPipeline(pod, rendering.Size{Width: 200, Height: 200}, &events, canvas))

	assert.Equal(t, rendering.Offset{}, first.State.Origin)
	assert.Equal(t, first.State.Size.Height, second.State.Origin.Y)
	assert.Equal(t,
		first.State.Size.Height+second.State.Size.Height,
		pod.State.Size.Height)
}

func TestColumnRoutesPointerToChild(t *testing.T) {
	buttonPath := id.Path{1, 2}
	button := NewPod(NewButton(buttonPath, "go"))
	text := NewPod(NewText("label", rendering.ColorWhite))
	pod := NewPod(NewColumn([]*Pod{text, button}))

	var events []event.Event
	canvas := rendering.NewDisplayListCanvas()
	require.False(t, runPipeline(pod, rendering.Size{Width: 200, Height: 200}, &events, canvas))

	// Hit the second child through the column's coordinate translation.
	target := rendering.Offset{X: 2, Y: button.State.Origin.Y + 2}
	var rootState State
	cxState := NewCxState(nil, &events)
	eventCx := NewEventCx(cxState, &rootState)
	down := PointerDown(target)
	pod.Event(eventCx, &down)
	up := PointerUp(target)
	pod.Event(eventCx, &up)

	require.Len(t, events, 1)
	assert.True(t, events[0].Path.Equal(buttonPath))
}

func TestLayoutObserverReportsSizeOnce(t *testing.T) {
	path := id.Path{9}
	observer := NewLayoutObserver(path)
	pod := NewPod(observer)
	var events []event.Event
	canvas := rendering.NewDisplayListCanvas()

	proposed := rendering.Size{Width: 120, Height: 80}
	require.True(t, runPipeline(pod, proposed, &events, canvas), "first layout reports bounds")
	require.Len(t, events, 1)
	assert.True(t, events[0].Path.Equal(path))
	assert.Equal(t, SizeChanged{Size: proposed}, events[0].Body)

	events = nil
	require.False(t, runPipeline(pod, proposed, &events, canvas), "unchanged bounds stay quiet")
	assert.Empty(t, events)

	require.True(t, runPipeline(pod, rendering.Size{Width: 60, Height: 80}, &events, canvas),
		"changed bounds report again")
}

func TestScrollReportsVisibleRect(t *testing.T) {
	path := id.Path{4}
	scroll := NewScroll(path)
	scroll.SetChild(NewPod(NewText("content", rendering.ColorWhite)))
	pod := NewPod(scroll)
	var events []event.Event
	canvas := rendering.NewDisplayListCanvas()

	proposed := rendering.Size{Width: 100, Height: 50}
	require.True(t, runPipeline(pod, proposed, &events, canvas))
	require.Len(t, events, 1)
	visible := events[0].Body.(VisibleChanged).Visible
	assert.Equal(t, rendering.RectFromLTWH(0, 0, 100, 50), visible)

	events = nil
	require.False(t, runPipeline(pod, proposed, &events, canvas), "same viewport reaches fixed point")
}
