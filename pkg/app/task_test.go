package app

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	weftErrors "github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/event"
	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/view"
	"github.com/go-weft/weft/pkg/widget"
)

func taskLogic(data *counter) view.View[counter] {
	return view.ButtonOf(fmt.Sprintf("count=%d", data.count), func(data *counter) {
		data.count++
	})
}

func TestTaskRenderCycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	task := NewTask(counter{}, taskLogic)
	go task.Run(ctx)

	require.NoError(t, task.RequestRender(ctx))
	resp := <-task.Responses()
	assert.Nil(t, resp.Prev, "first render has nothing to diff against")
	button, ok := resp.View.(view.Button[counter])
	require.True(t, ok)
	assert.Equal(t, "count=0", button.Label)

	// The caller builds and diffs on its own thread, then hands the pair
	// back before the next render.
	cx := view.NewCx(event.NewWakeQueue())
	node, state, _ := resp.View.Build(cx)
	require.True(t, cx.IsEmpty())
	require.NoError(t, task.ReturnView(ctx, resp.View, state))

	require.NoError(t, task.SendEvents(ctx, []event.Event{
		event.New(id.Path{node}, widget.ButtonPressed{}),
	}))

	require.NoError(t, task.RequestRender(ctx))
	resp = <-task.Responses()
	require.NotNil(t, resp.Prev)
	assert.Equal(t, "count=0", resp.Prev.(view.Button[counter]).Label)
	assert.Equal(t, "count=1", resp.View.(view.Button[counter]).Label)
	require.NoError(t, task.ReturnView(ctx, resp.View, resp.PrevState))
}

func TestTaskDropsEventsBeforeFirstRender(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	task := NewTask(counter{}, taskLogic)
	go task.Run(ctx)

	// No view exists yet, so there is nothing to route these through.
	require.NoError(t, task.SendEvents(ctx, []event.Event{
		event.New(id.Path{42}, widget.ButtonPressed{}),
	}))

	require.NoError(t, task.RequestRender(ctx))
	resp := <-task.Responses()
	assert.Equal(t, "count=0", resp.View.(view.Button[counter]).Label)
}

func TestTaskRenderWhileBorrowedIsFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	task := NewTask(counter{}, taskLogic)
	panicked := make(chan any, 1)
	go func() {
		defer func() { panicked <- recover() }()
		task.Run(ctx)
	}()

	require.NoError(t, task.RequestRender(ctx))
	<-task.Responses()

	// Second render without ReturnView violates the borrow contract.
	require.NoError(t, task.RequestRender(ctx))
	err, ok := (<-panicked).(*weftErrors.WeftError)
	require.True(t, ok, "task panics with a structured error")
	assert.Equal(t, weftErrors.KindContract, err.Kind)
}

type captureHandler struct {
	mu   sync.Mutex
	errs []*weftErrors.WeftError
}

func (h *captureHandler) HandleError(err *weftErrors.WeftError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *captureHandler) captured() []*weftErrors.WeftError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*weftErrors.WeftError(nil), h.errs...)
}

func TestTaskDroppedResponseIsReportedNotFatal(t *testing.T) {
	capture := &captureHandler{}
	weftErrors.SetHandler(capture)
	defer weftErrors.SetHandler(nil)

	ctx, cancel := context.WithCancel(context.Background())
	task := NewTask(counter{}, taskLogic)
	done := make(chan struct{})
	go func() {
		task.Run(ctx)
		close(done)
	}()

	require.NoError(t, task.RequestRender(ctx))
	// Nobody reads the response; cancel while the task is blocked sending.
	cancel()
	<-done

	errs := capture.captured()
	require.Len(t, errs, 1)
	assert.Equal(t, weftErrors.KindComm, errs[0].Kind)
	assert.Equal(t, "app.Task.render", errs[0].Op)
}
