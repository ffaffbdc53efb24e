package layout

import (
	"github.com/driftmap/dyng/graph"
	"github.com/driftmap/dyng/parallel"
)

// ParallelForesightedLayout runs the same Foresighted Layout with Tolerance
// algorithm as ForesightedLayout, but spreads its tolerance refinement pass
// — the part of the algorithm that dominates runtime — across a worker
// pool. It produces the same keyframe positions as ForesightedLayout; only
// the wall-clock cost differs.
type ParallelForesightedLayout struct {
	*ForesightedLayout
	pool *parallel.Pool
}

// NewParallelForesightedLayout returns a ParallelForesightedLayout backed
// by a pool of the given size (the caller's own goroutine counts as one of
// them).
func NewParallelForesightedLayout(threads int, tolerance, canvasWidth, canvasHeight float32) *ParallelForesightedLayout {
	base := NewForesightedLayout(canvasWidth, canvasHeight)
	base.Tolerance = tolerance
	l := &ParallelForesightedLayout{
		ForesightedLayout: base,
		pool:              parallel.NewPool(threads),
	}
	l.toleranceFunc = l.parallelTolerance
	return l
}

// Close shuts down the layout's worker pool. Call it once the layout is no
// longer needed.
func (l *ParallelForesightedLayout) Close() { l.pool.Close() }

// parallelTolerance mirrors refineTolerance's sequential logic exactly, but
// runs every worker's interleaved share of keyframes through two barriers
// per round: one after each worker relaxes its own keyframes, and one
// after worker 0 alone recomputes, sequentially, which of this round's
// relaxed copies to accept.
func (l *ParallelForesightedLayout) parallelTolerance(states []*graph.Graph, width, height, tol float32) {
	temp := l.Cooling.StartTemperature
	if !l.RelativeDistance {
		tol *= l.StaticLayout.RelativeUnit(width, height) * float32(maxNodeCount(states))
	}

	bar := parallel.NewBarrier(l.pool.Count())
	copies := make([]*graph.Graph, len(states))
	for i, s := range states {
		copies[i] = s.Clone()
	}
	apply := make([]bool, len(states))

	get := func(i int) *graph.Graph {
		if apply[i] {
			return copies[i]
		}
		return states[i]
	}

	l.pool.ForEachInterleaved(func(begin, step int) {
		for r := uint(0); r < l.Cooling.Iterations; r++ {
			for i := begin; i < len(states); i += step {
				if apply[i] {
					states[i] = copies[i]
				}
				copies[i] = states[i].Clone()
			}
			for i := begin; i < len(states); i += step {
				l.StaticLayout.Iteration(copies[i], width, height, temp)
			}
			bar.Wait()
			if begin == 0 {
				// Only the thread owning index 0 runs this, and it must run
				// sequentially: get(i-1) needs to see this round's
				// already-decided lower indices.
				for i := range states {
					apply[i] = false
					okPrev := i == 0 || l.distance(copies[i], get(i-1)) < tol
					okNext := i >= len(states)-1 || l.distance(copies[i], states[i+1]) < tol
					if okPrev && okNext {
						apply[i] = true
					}
				}
				temp = l.Cooling.Anneal(temp)
			}
			bar.Wait()
		}
		// Commit the final round's accepted copies.
		for i := begin; i < len(states); i += step {
			if apply[i] {
				states[i] = copies[i]
			}
		}
	})
}
