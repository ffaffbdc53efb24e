// Package parallel provides the fixed-size worker pool and generational
// barrier the foresighted layout's tolerance pass uses to refine every
// keyframe concurrently.
package parallel

import "sync"

// Barrier synchronizes a fixed number of goroutines so none proceeds past
// Wait until all of them have called it. It tracks a generation counter
// alongside the count so a goroutine that re-checks its wake condition
// after being notified can tell a genuine release from a spurious wakeup.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	size    int
	current int
	gen     uint64
}

// NewBarrier returns a Barrier that releases once count goroutines have
// called Wait.
func NewBarrier(count int) *Barrier {
	b := &Barrier{size: count, current: count}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Reset reconfigures the barrier for a new participant count, starting a
// fresh generation.
func (b *Barrier) Reset(count int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.size = count
	b.current = count
	b.gen++
}

// Wait blocks until every other participant has also called Wait.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.current--
	if b.current == 0 {
		b.gen++
		b.current = b.size
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}
