package layout

import "github.com/driftmap/dyng/graph"

// StaticLayout positions the nodes of a single graph.Graph. It is injected
// into ForesightedLayout so the supergraph/RGAP placement and the
// per-keyframe tolerance refinement both go through the same algorithm.
//
// Layout runs the full placement from scratch, including the initial
// scatter. Iteration runs exactly one round of refinement at a caller-chosen
// temperature, letting a caller repeatedly nudge an already-placed graph.
// RelativeUnit converts a fraction of the canvas diagonal into the same
// units Iteration's temperature argument expects.
type StaticLayout interface {
	Layout(g *graph.Graph, width, height float32)
	Iteration(g *graph.Graph, width, height, temperature float32)
	RelativeUnit(width, height float32) float32
}
