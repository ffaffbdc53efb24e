package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftmap/dyng/graph"
)

func TestBuildProducesOneStatePerTimeStep(t *testing.T) {
	dg := NewDynamicGraph()
	n0 := dg.AddNode(0)
	n1 := dg.AddNode(0)
	dg.AddEdge(2, n0, n1)

	require.NoError(t, dg.Build())
	states := dg.States()
	require.Len(t, states, 3)

	assert.Len(t, states[0].Nodes(), 2)
	assert.Len(t, states[0].Edges(), 0)
	assert.Len(t, states[1].Edges(), 0, "a time step with no ops repeats the previous state")
	assert.Len(t, states[2].Edges(), 1)
}

func TestBuildCarriesStateForward(t *testing.T) {
	dg := NewDynamicGraph()
	n0 := dg.AddNode(0)
	dg.RemoveNode(3, n0)

	require.NoError(t, dg.Build())
	states := dg.States()
	require.Len(t, states, 4)
	for i := 0; i < 3; i++ {
		assert.True(t, states[i].NodeExists(n0))
	}
	assert.False(t, states[3].NodeExists(n0))
}

func TestLifecycleFlagsMarkAppearAndDisappear(t *testing.T) {
	dg := NewDynamicGraph()
	n0 := dg.AddNode(0)
	n1 := dg.AddNode(1)
	dg.RemoveNode(2, n0)

	require.NoError(t, dg.Build())
	states := dg.States()
	require.Len(t, states, 3)

	assert.False(t, states[0].NodeExists(n1), "n1 is not added until time step 1")

	node0AtState0, err := states[0].NodeAt(n0)
	require.NoError(t, err)
	assert.False(t, node0AtState0.IsNew, "present in the first state, so not new")
	assert.False(t, node0AtState0.IsOld, "still present at state 1")

	node0AtState1, err := states[1].NodeAt(n0)
	require.NoError(t, err)
	assert.True(t, node0AtState1.IsOld, "absent from state 2, so marked old")

	node1AtState1, err := states[1].NodeAt(n1)
	require.NoError(t, err)
	assert.True(t, node1AtState1.IsNew, "appears for the first time at state 1")

	node1AtState2, err := states[2].NodeAt(n1)
	require.NoError(t, err)
	assert.False(t, node1AtState2.IsNew, "already present at state 1")
}

func TestBuildFromRecalculatesIDCounters(t *testing.T) {
	g0 := graph.NewGraph()
	g0.PushNode(graph.NewNode(5))
	g0.PushNode(graph.NewNode(9))
	_, err := g0.PushEdge(graph.NewEdge(2, 5, 9))
	require.NoError(t, err)

	dg := NewDynamicGraph()
	dg.BuildFrom([]*graph.Graph{g0})

	assert.Equal(t, 10, dg.NodeCount())
	assert.Equal(t, 3, dg.EdgeCount())

	next := dg.AddNode(0)
	assert.Equal(t, graph.NodeID(10), next, "new ids must never collide with ids already present")
}

func TestInvalidOperationSurfacesAsError(t *testing.T) {
	dg := NewDynamicGraph()
	dg.RemoveNode(0, graph.NodeID(42))
	err := dg.Build()
	require.Error(t, err)
}
