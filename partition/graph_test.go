package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftmap/dyng/graph"
)

func TestPushEdgeRequiresBothEndpoints(t *testing.T) {
	g := NewGraph()
	g.PushNode(NewNodePartition(1))
	_, err := g.PushEdge(NewEdgePartition(0, 1, 2))
	require.Error(t, err)
}

func TestCloneWithoutEdgesDropsEdgesKeepsNodes(t *testing.T) {
	g := NewGraph()
	g.PushNode(NewNodePartition(1))
	g.PushNode(NewNodePartition(2))
	_, err := g.PushEdge(NewEdgePartition(0, 1, 2))
	require.NoError(t, err)

	clone := g.CloneWithoutEdges()
	assert.Len(t, clone.Nodes(), 2)
	assert.Len(t, clone.Edges(), 0)

	_, err = clone.PushEdge(NewEdgePartition(0, 1, 2))
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 1, "clone mutations must not leak back into the source graph")
}

func TestNodeAtUnknownIsOutOfRange(t *testing.T) {
	g := NewGraph()
	_, err := g.NodeAt(graph.NodeID(1))
	require.Error(t, err)
	var oor *graph.OutOfRangeError
	assert.ErrorAs(t, err, &oor)
}
