package parallel

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolForEachRunsEveryWorker(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var mu sync.Mutex
	var seen []int
	p.ForEach(func(thread int) {
		mu.Lock()
		seen = append(seen, thread)
		mu.Unlock()
	})

	sort.Ints(seen)
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestPoolForEachChunkCoversEveryIndexOnce(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	const size = 10
	var mu sync.Mutex
	var covered []int
	p.ForEachChunk(size, func(begin, end int) {
		mu.Lock()
		for i := begin; i < end; i++ {
			covered = append(covered, i)
		}
		mu.Unlock()
	})

	sort.Ints(covered)
	expected := make([]int, size)
	for i := range expected {
		expected[i] = i
	}
	assert.Equal(t, expected, covered)
}

func TestPoolForEachInterleavedStridesCoverAllIndices(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	const size = 11
	var mu sync.Mutex
	covered := make(map[int]bool)
	p.ForEachInterleaved(func(begin, step int) {
		for i := begin; i < size; i += step {
			mu.Lock()
			covered[i] = true
			mu.Unlock()
		}
	})

	assert.Len(t, covered, size)
}

func TestPoolOfSizeOneRunsInline(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	ran := false
	p.ForEach(func(thread int) {
		ran = true
		assert.Equal(t, 0, thread)
	})
	assert.True(t, ran)
}

func TestPoolCloseIsIdempotentlySafeToDeferAfterForEach(t *testing.T) {
	p := NewPool(2)
	p.ForEach(func(thread int) {})
	p.Close()
}

func TestChunkBounds(t *testing.T) {
	begin, end := chunkBounds(0, 3, 10)
	assert.Equal(t, 0, begin)
	assert.Equal(t, 4, end)

	begin, end = chunkBounds(2, 3, 10)
	assert.Equal(t, 8, begin)
	assert.Equal(t, 10, end)
}
