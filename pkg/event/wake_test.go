package event

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-weft/weft/pkg/id"
	"github.com/go-weft/weft/pkg/platform"
)

func TestPushWakeReportsEmptyTransition(t *testing.T) {
	queue := NewWakeQueue()

	assert.True(t, queue.PushWake(id.Path{1}))
	assert.False(t, queue.PushWake(id.Path{2}))
	assert.False(t, queue.PushWake(id.Path{3}))

	require.Len(t, queue.Take(), 3)
	assert.Empty(t, queue.Take())

	assert.True(t, queue.PushWake(id.Path{4}), "drained queue is empty again")
}

func TestWakeCoalescing(t *testing.T) {
	const producers = 32

	queue := NewWakeQueue()
	var wasEmpty atomic.Int32
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer done.Done()
			start.Wait()
			if queue.PushWake(id.Path{id.Id(p + 1)}) {
				wasEmpty.Add(1)
			}
		}(p)
	}
	start.Done()
	done.Wait()

	assert.Equal(t, int32(1), wasEmpty.Load(),
		"exactly one producer observes the empty-to-non-empty transition")

	taken := queue.Take()
	require.Len(t, taken, producers)
	seen := make(map[id.Id]bool)
	for _, path := range taken {
		require.Len(t, path, 1)
		require.False(t, seen[path[0]], "path %v duplicated", path)
		seen[path[0]] = true
	}
	assert.Empty(t, queue.Take())
}

func TestWakerSignalsIdleOncePerDrain(t *testing.T) {
	idles := 0
	window := platform.NewHeadless(func() { idles++ })

	queue := NewWakeQueue()
	waker := NewWaker(id.Path{7}, queue, window.IdleHandle())

	waker.Wake()
	waker.Wake()
	waker.Wake()
	assert.Equal(t, 1, idles, "coalesced wakes signal idle once")
	assert.Len(t, queue.Take(), 3)

	waker.Wake()
	assert.Equal(t, 2, idles, "a wake after the drain signals again")
}

func TestWakerWithoutIdleHandle(t *testing.T) {
	queue := NewWakeQueue()
	waker := NewWaker(id.Path{1}, queue, nil)

	waker.Wake() // must not panic before the platform connection exists
	assert.Len(t, queue.Take(), 1)
}

func TestWakerClonesPath(t *testing.T) {
	queue := NewWakeQueue()
	path := id.Path{1, 2}
	waker := NewWaker(path, queue, nil)
	path[0] = 99

	waker.Wake()
	taken := queue.Take()
	require.Len(t, taken, 1)
	assert.True(t, taken[0].Equal(id.Path{1, 2}))
}
