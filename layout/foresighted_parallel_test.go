package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftmap/dyng/timeline"
)

func buildToleranceDynamicGraph(t *testing.T) *timeline.DynamicGraph {
	t.Helper()
	dg := timeline.NewDynamicGraph()
	n0 := dg.AddNode(0)
	n1 := dg.AddNode(0)
	n2 := dg.AddNode(1)
	dg.AddEdge(0, n0, n1)
	dg.AddEdge(1, n1, n2)
	require.NoError(t, dg.Build())
	return dg
}

func TestParallelForesightedLayoutMatchesSequential(t *testing.T) {
	seqGraph := buildToleranceDynamicGraph(t)
	seq := NewForesightedLayout(400, 300)
	seq.Tolerance = 0.1
	seq.Run(seqGraph)

	parGraph := buildToleranceDynamicGraph(t)
	par := NewParallelForesightedLayout(2, 0.1, 400, 300)
	defer par.Close()
	par.Run(parGraph)

	seqStates := seqGraph.States()
	parStates := parGraph.States()
	require.Len(t, parStates, len(seqStates))

	for i := range seqStates {
		seqNodes := seqStates[i].Nodes()
		parNodes := parStates[i].Nodes()
		require.Len(t, parNodes, len(seqNodes))
		for j := range seqNodes {
			assert.InDelta(t, seqNodes[j].Pos.X, parNodes[j].Pos.X, 1e-4)
			assert.InDelta(t, seqNodes[j].Pos.Y, parNodes[j].Pos.Y, 1e-4)
		}
	}
}

func TestParallelForesightedLayoutCloseStopsWorkers(t *testing.T) {
	l := NewParallelForesightedLayout(3, 0, 100, 100)
	require.NotPanics(t, func() { l.Close() })
}
