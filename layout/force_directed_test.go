package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftmap/dyng/graph"
)

func buildTriangle() *graph.Graph {
	g := graph.NewGraph()
	g.PushNode(graph.NewNode(1))
	g.PushNode(graph.NewNode(2))
	g.PushNode(graph.NewNode(3))
	g.PushEdge(graph.NewEdge(0, 1, 2))
	g.PushEdge(graph.NewEdge(1, 2, 3))
	return g
}

func TestLayoutSpreadsNodesApart(t *testing.T) {
	g := buildTriangle()
	l := NewForceDirectedLayout()
	l.Layout(g, 200, 200)

	nodes := g.Nodes()
	for i := range nodes {
		for j := range nodes {
			if i == j {
				continue
			}
			dist := hypot(nodes[i].Pos.X-nodes[j].Pos.X, nodes[i].Pos.Y-nodes[j].Pos.Y)
			assert.Greater(t, dist, float32(0), "laid-out nodes must not overlap exactly")
		}
	}
}

func TestLayoutKeepsNodesWithinCanvasBounds(t *testing.T) {
	g := buildTriangle()
	l := NewForceDirectedLayout()
	l.Layout(g, 100, 100)

	for _, n := range g.Nodes() {
		assert.LessOrEqual(t, n.Pos.X, float32(50.001))
		assert.GreaterOrEqual(t, n.Pos.X, float32(-50.001))
		assert.LessOrEqual(t, n.Pos.Y, float32(50.001))
		assert.GreaterOrEqual(t, n.Pos.Y, float32(-50.001))
	}
}

func TestBorderDisplacementPushesTowardCenter(t *testing.T) {
	l := NewForceDirectedLayout()
	const k, dim = 0.6, float32(1.0)

	near := l.borderDisplacement(k, dim, dim*0.3)
	assert.Negative(t, near, "a node approaching the positive border must be pushed back toward center")

	far := l.borderDisplacement(k, dim, -dim*0.3)
	assert.Positive(t, far, "a node approaching the negative border must be pushed back toward center")
}

func TestBorderDisplacementAtCenterIsZero(t *testing.T) {
	l := NewForceDirectedLayout()
	got := l.borderDisplacement(0.6, 1.0, 0)
	assert.InDelta(t, float32(0), got, 1e-6)
}

func TestLayoutOnEmptyGraphIsNoop(t *testing.T) {
	g := graph.NewGraph()
	l := NewForceDirectedLayout()
	require.NotPanics(t, func() { l.Layout(g, 100, 100) })
}

func TestXorshiftIsDeterministic(t *testing.T) {
	a := newXorshift(0)
	b := newXorshift(0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.next(), b.next())
	}
}

func TestXorshiftFloat32InUnitRange(t *testing.T) {
	r := newXorshift(7)
	for i := 0; i < 100; i++ {
		v := r.float32()
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestRelativeUnit(t *testing.T) {
	l := NewForceDirectedLayout()
	got := l.RelativeUnit(3, 4)
	assert.InDelta(t, float32(5)*unitCoeff, got, 1e-5)
}
