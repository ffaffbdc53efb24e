package frameview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driftmap/dyng/graph"
)

func TestNewRendersNodesAndEdges(t *testing.T) {
	g := graph.NewGraph()
	g.PushNode(graph.Node{ID: 0, Pos: graph.Coord{X: 1, Y: 2}, Alpha: 0.5})
	g.PushNode(graph.Node{ID: 1, Pos: graph.Coord{X: 3, Y: 4}, Alpha: 1})
	_, err := g.PushEdge(graph.NewEdge(0, 0, 1))
	assert.NoError(t, err)

	frame := New(g)
	assert.Len(t, frame.Nodes, 2)
	assert.Len(t, frame.Edges, 1)
	assert.Equal(t, "0", frame.Nodes[0].ID)
	assert.Equal(t, float32(1), frame.Nodes[0].X)
	assert.Equal(t, float32(0.5), frame.Nodes[0].Alpha)
	assert.Equal(t, "0", frame.Edges[0].One)
	assert.Equal(t, "1", frame.Edges[0].Two)
}
