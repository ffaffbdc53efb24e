package layout

import (
	"math"

	"github.com/driftmap/dyng/graph"
	"github.com/driftmap/dyng/partition"
	"github.com/driftmap/dyng/timeline"
)

const calculationHeight = 1.0

// ForesightedLayout implements Foresighted Layout with Tolerance: it builds
// one shared base layout for an entire keyframe sequence via graph
// animation partitioning, then refines each keyframe independently within a
// bounded "mental distance" of its neighbors.
type ForesightedLayout struct {
	Tolerance        float32
	CanvasWidth      float32
	CanvasHeight     float32
	Center           graph.Coord
	Cooling          Cooling
	StaticLayout     StaticLayout
	RelativeDistance bool

	// toleranceFunc performs the tolerance refinement pass. It defaults to
	// l.refineTolerance; ParallelForesightedLayout overrides it with a
	// worker-pool-driven equivalent.
	toleranceFunc func(states []*graph.Graph, width, height, tol float32)
}

// NewForesightedLayout returns a ForesightedLayout targeting the given
// canvas dimensions, with zero tolerance (no refinement pass) and the
// default ForceDirectedLayout static layout.
func NewForesightedLayout(canvasWidth, canvasHeight float32) *ForesightedLayout {
	l := &ForesightedLayout{
		Tolerance:        0,
		CanvasWidth:      canvasWidth,
		CanvasHeight:     canvasHeight,
		Cooling:          DefaultToleranceCooling(),
		StaticLayout:     NewForceDirectedLayout(),
		RelativeDistance: true,
	}
	l.toleranceFunc = l.refineTolerance
	return l
}

// Run positions every keyframe of dg's built states in place.
func (l *ForesightedLayout) Run(dg *timeline.DynamicGraph) {
	states := dg.States()
	if len(states) == 0 {
		return
	}

	calcH := float32(calculationHeight)
	calcW := calcH * l.CanvasWidth / l.CanvasHeight

	l.basicLayout(states, calcW, calcH)

	if l.Tolerance != 0 {
		l.toleranceFunc(states, calcW, calcH, l.Tolerance)
	}

	for _, state := range states {
		rescale(state, calcW, calcH, l.CanvasWidth, l.CanvasHeight)
		translate(state, l.Center.X, l.Center.Y)
	}
}

// basicLayout builds the supergraph, partitions it into GAP then RGAP, lays
// out the RGAP once, and copies the resulting positions back onto every
// keyframe that shares each RGAP node.
func (l *ForesightedLayout) basicLayout(states []*graph.Graph, width, height float32) {
	nodesLive := nodeLiveTimes(states)
	edgesLive := edgeLiveTimes(states)

	super := calculateSupergraph(states)
	gap := calculateGAP(super, nodesLive, edgesLive)
	rgap := calculateRGAP(gap)

	laidOut := rgapAsGraph(rgap)
	l.StaticLayout.Layout(laidOut, width, height)
	copyPositionsToRGAP(laidOut, rgap)

	for _, state := range states {
		for i := range state.Nodes() {
			n := &state.Nodes()[i]
			target, err := rgap.NodeAt(n.ID)
			if err != nil {
				continue
			}
			n.Pos = target.Pos
		}
	}
}

// copyPositionsToRGAP writes the positions a StaticLayout computed on the
// plain-graph adaptation of an RGAP back onto the RGAP's own partition
// nodes, which is what basicLayout reads when positioning every keyframe.
func copyPositionsToRGAP(laidOut *graph.Graph, rgap *partition.MappedGraph) {
	for _, n := range laidOut.Nodes() {
		p, err := rgap.Graph().NodeAt(n.ID)
		if err != nil {
			continue
		}
		p.Pos = n.Pos
	}
}

// refineTolerance re-relaxes each keyframe independently, accepting an
// iteration's update only when it keeps the keyframe within tolerance of
// both its temporal neighbors.
func (l *ForesightedLayout) refineTolerance(states []*graph.Graph, width, height, tol float32) {
	temp := l.Cooling.StartTemperature
	if !l.RelativeDistance {
		tol *= l.StaticLayout.RelativeUnit(width, height) * float32(maxNodeCount(states))
	}
	for r := uint(0); r < l.Cooling.Iterations; r++ {
		for s, state := range states {
			copy := state.Clone()
			l.StaticLayout.Iteration(copy, width, height, temp)
			okPrev := s == 0 || l.distance(copy, states[s-1]) < tol
			okNext := s >= len(states)-1 || l.distance(copy, states[s+1]) < tol
			if okPrev && okNext {
				states[s] = copy
			}
		}
		temp = l.Cooling.Anneal(temp)
	}
}

// distance computes the euclidean "mental distance" between two keyframes:
// the sum of per-shared-node positional differences, averaged by the
// number of shared nodes when RelativeDistance is set.
func (l *ForesightedLayout) distance(one, two *graph.Graph) float32 {
	var result float32
	var count int
	for _, n := range one.Nodes() {
		other, err := two.NodeAt(n.ID)
		if err != nil {
			continue
		}
		dx := n.Pos.X - other.Pos.X
		dy := n.Pos.Y - other.Pos.Y
		result += float32(math.Sqrt(float64(dx*dx + dy*dy)))
		count++
	}
	if l.RelativeDistance {
		if count == 0 {
			return 0
		}
		return result / float32(count)
	}
	return result
}

func rescale(g *graph.Graph, srcW, srcH, dstW, dstH float32) {
	wc := dstW / srcW
	hc := dstH / srcH
	nodes := g.Nodes()
	for i := range nodes {
		nodes[i].Pos.X *= wc
		nodes[i].Pos.Y *= hc
	}
}

func translate(g *graph.Graph, dx, dy float32) {
	nodes := g.Nodes()
	for i := range nodes {
		nodes[i].Pos.X += dx
		nodes[i].Pos.Y += dy
	}
}

func maxNodeCount(states []*graph.Graph) int {
	max := 0
	for _, s := range states {
		if n := len(s.Nodes()); n > max {
			max = n
		}
	}
	return max
}

func nodeLiveTimes(states []*graph.Graph) map[graph.NodeID]*partition.LiveSet {
	result := make(map[graph.NodeID]*partition.LiveSet)
	for t, state := range states {
		for _, n := range state.Nodes() {
			live, ok := result[n.ID]
			if !ok {
				live = &partition.LiveSet{}
				result[n.ID] = live
			}
			live.Add(uint(t))
		}
	}
	return result
}

func edgeLiveTimes(states []*graph.Graph) map[graph.EdgeID]*partition.LiveSet {
	result := make(map[graph.EdgeID]*partition.LiveSet)
	for t, state := range states {
		for _, e := range state.Edges() {
			live, ok := result[e.ID]
			if !ok {
				live = &partition.LiveSet{}
				result[e.ID] = live
			}
			live.Add(uint(t))
		}
	}
	return result
}

// calculateSupergraph returns the union of every node and edge appearing in
// any keyframe.
func calculateSupergraph(states []*graph.Graph) *graph.Graph {
	super := graph.NewGraph()
	for _, state := range states {
		for _, n := range state.Nodes() {
			super.PushNode(graph.NewNode(n.ID))
		}
		for _, e := range state.Edges() {
			_, _ = super.PushEdge(graph.NewEdge(e.ID, e.One, e.Two))
		}
	}
	return super
}

// calculateGAP groups supergraph nodes into partitions whose members' live
// sets are pairwise disjoint (first-disjoint-partition-wins), then
// reinstates every supergraph edge between the resulting partition ids.
func calculateGAP(
	super *graph.Graph,
	nodesLive map[graph.NodeID]*partition.LiveSet,
	edgesLive map[graph.EdgeID]*partition.LiveSet,
) *partition.MappedGraph {
	gap := partition.NewMappedGraph(partition.NewGraph())

	for _, n := range super.Nodes() {
		live := nodesLive[n.ID]
		placed := false
		for i := range gap.Graph().Nodes() {
			p := &gap.Graph().Nodes()[i]
			inter := p.LiveTime().Intersection(live)
			if inter.Empty() {
				p.AddLiveTime(live)
				gap.MapNode(n.ID, p.ID)
				placed = true
				break
			}
		}
		if !placed {
			added := gap.Graph().PushNode(partition.NewNodePartition(n.ID))
			added.AddLiveTime(live)
		}
	}

	for _, e := range super.Edges() {
		one, err := gap.NodeAt(e.One)
		if err != nil {
			continue
		}
		two, err := gap.NodeAt(e.Two)
		if err != nil {
			continue
		}
		added, err := gap.Graph().PushEdge(partition.NewEdgePartition(e.ID, one.ID, two.ID))
		if err != nil {
			continue
		}
		added.AddLiveTime(edgesLive[e.ID])
	}
	return gap
}

// calculateRGAP further merges GAP edge-partitions connecting the same pair
// of node-partitions, as long as their live sets stay pairwise disjoint,
// reducing the number of distinct edges the static layout has to place.
func calculateRGAP(gap *partition.MappedGraph) *partition.MappedGraph {
	rgap := gap.CloneNodeGraph()

	removed := make(map[graph.EdgeID]bool)
	edges := gap.Graph().Edges()
	sameEndpoints := func(a, b partition.EdgePartition) bool {
		return (a.One == b.One && a.Two == b.Two) || (a.One == b.Two && a.Two == b.One)
	}

	for i := 0; i < len(edges); i++ {
		ei := edges[i]
		if removed[ei.ID] {
			continue
		}
		current, err := rgap.Graph().PushEdge(partition.NewEdgePartition(ei.ID, ei.One, ei.Two))
		if err != nil {
			continue
		}
		current.AddLiveTime(ei.LiveTime())
		for k := i + 1; k < len(edges); k++ {
			ek := edges[k]
			if removed[ek.ID] {
				continue
			}
			if !sameEndpoints(ei, ek) {
				continue
			}
			intersection := current.LiveTime().Intersection(ek.LiveTime())
			if !intersection.Empty() {
				continue
			}
			rgap.MapEdge(ek.ID, current.ID)
			current.AddLiveTime(ek.LiveTime())
			removed[ek.ID] = true
		}
	}
	return rgap
}

// rgapAsGraph adapts an RGAP's partition graph into a plain graph.Graph so
// it can be handed to a StaticLayout. Node/edge ids are preserved; the
// positions computed by the layout are copied back onto the partition graph
// afterward.
func rgapAsGraph(rgap *partition.MappedGraph) *graph.Graph {
	g := graph.NewGraph()
	for _, n := range rgap.Graph().Nodes() {
		g.PushNode(graph.NewNode(n.ID))
	}
	for _, e := range rgap.Graph().Edges() {
		_, _ = g.PushEdge(graph.NewEdge(e.ID, e.One, e.Two))
	}
	return g
}
