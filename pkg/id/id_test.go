package id

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextUnique(t *testing.T) {
	seen := make(map[Id]bool)
	for i := 0; i < 1000; i++ {
		node := Next()
		require.False(t, seen[node], "id %v allocated twice", node)
		seen[node] = true
	}
}

func TestNextConcurrent(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 250

	results := make([][]Id, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids := make([]Id, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, Next())
			}
			results[g] = ids
		}(g)
	}
	wg.Wait()

	seen := make(map[Id]bool)
	for _, ids := range results {
		for _, node := range ids {
			require.False(t, seen[node], "id %v allocated twice", node)
			seen[node] = true
		}
	}
	require.Len(t, seen, goroutines*perGoroutine)
}

func TestPathClone(t *testing.T) {
	path := Path{1, 2, 3}
	clone := path.Clone()
	require.True(t, path.Equal(clone))

	clone[0] = 99
	assert.Equal(t, Id(1), path[0], "clone must not alias the original")
}

func TestPathEqual(t *testing.T) {
	assert.True(t, Path{1, 2}.Equal(Path{1, 2}))
	assert.False(t, Path{1, 2}.Equal(Path{1, 3}))
	assert.False(t, Path{1, 2}.Equal(Path{1, 2, 3}))
	assert.True(t, Path{}.Equal(nil))
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "/#1/#2", Path{1, 2}.String())
}
