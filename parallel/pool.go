package parallel

import (
	"math"
	"sync"
)

// Pool is a fixed-size worker pool. The caller's own goroutine acts as
// worker 0 and runs its job inline inside perform; workers 1..N-1 run in
// background goroutines started by NewPool and parked on a condition
// variable between jobs.
type Pool struct {
	mu   sync.Mutex
	cond *sync.Cond
	jobs []func()
	run  []bool
	end  bool
	bar  *Barrier
	n    int
	wg   sync.WaitGroup
}

// NewPool starts n-1 background workers (n < 1 is treated as 1, meaning no
// background workers at all — every ForEach call then just runs inline).
func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		n:    n,
		jobs: make([]func(), n),
		run:  make([]bool, n),
		bar:  NewBarrier(n),
	}
	p.cond = sync.NewCond(&p.mu)
	for i := 1; i < n; i++ {
		p.wg.Add(1)
		go p.workerLoop(i)
	}
	return p
}

// Count returns the number of workers, including worker 0 (the caller).
func (p *Pool) Count() int { return p.n }

// Close shuts every background worker down and waits for them to exit.
// No ForEach method may be called again afterward.
func (p *Pool) Close() {
	p.mu.Lock()
	p.end = true
	for i := range p.run {
		p.run[i] = true
	}
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

func (p *Pool) workerLoop(i int) {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for !p.run[i] {
			p.cond.Wait()
		}
		p.run[i] = false
		end := p.end
		job := p.jobs[i]
		p.mu.Unlock()

		// Check for shutdown right after waking, before running a job or
		// touching the barrier, so a Close() call can never hang the other
		// workers waiting for this one at the barrier.
		if end {
			return
		}
		if job != nil {
			job()
		}
		p.bar.Wait()
	}
}

// perform releases every worker's assigned job, runs worker 0's job inline,
// and blocks until all of them reach the barrier.
func (p *Pool) perform() {
	p.mu.Lock()
	for i := range p.run {
		p.run[i] = true
	}
	p.mu.Unlock()
	p.cond.Broadcast()

	if p.jobs[0] != nil {
		p.jobs[0]()
	}
	p.bar.Wait()
}

// ForEach assigns fn(i) to worker i for every worker and waits for all of
// them to finish.
func (p *Pool) ForEach(fn func(thread int)) {
	for i := 0; i < p.n; i++ {
		idx := i
		p.jobs[idx] = func() { fn(idx) }
	}
	p.perform()
}

// ForEachChunk splits [0, size) into p.Count() contiguous chunks, one per
// worker, and waits for all of them to finish.
func (p *Pool) ForEachChunk(size int, fn func(begin, end int)) {
	for i := 0; i < p.n; i++ {
		begin, end := chunkBounds(i, p.n, size)
		p.jobs[i] = func() { fn(begin, end) }
	}
	p.perform()
}

// ForEachInterleaved assigns fn(i, p.Count()) to worker i for every worker,
// meant for workers to stride their own index range by step themselves —
// e.g. worker i handling indices i, i+step, i+2*step, ... — and waits for
// all of them to finish.
func (p *Pool) ForEachInterleaved(fn func(begin, step int)) {
	n := p.n
	for i := 0; i < n; i++ {
		idx := i
		p.jobs[idx] = func() { fn(idx, n) }
	}
	p.perform()
}

// chunkBounds returns the [begin, end) range of work item indices assigned
// to worker `thread` out of `workers` total, splitting `size` items into
// workers roughly-equal contiguous chunks.
func chunkBounds(thread, workers, size int) (int, int) {
	chunk := int(math.Ceil(float64(size) / float64(workers)))
	start := 0
	for i := 0; i <= thread; i++ {
		count := chunk
		if start+count > size {
			count = size - start
		}
		if i == thread {
			return start, start + count
		}
		start += count
	}
	return start, start + chunk
}
