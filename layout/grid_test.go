package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driftmap/dyng/graph"
)

func TestSpatialGridForEachAroundFindsNeighbors(t *testing.T) {
	g := newSpatialGrid(100, 100, 5)
	g.add(graph.Coord{X: 0, Y: 0}, 0)
	g.add(graph.Coord{X: 1, Y: 1}, 1)
	g.add(graph.Coord{X: -40, Y: -40}, 2)

	var found []int
	g.forEachAround(graph.Coord{X: 0, Y: 0}, func(index int) {
		found = append(found, index)
	})
	assert.ElementsMatch(t, []int{0, 1}, found, "distant node must not appear in the neighborhood")
}

func TestSpatialGridResetClearsCells(t *testing.T) {
	g := newSpatialGrid(100, 100, 5)
	g.add(graph.Coord{X: 0, Y: 0}, 0)
	g.reset(100, 100, 5)

	var found []int
	g.forEachAround(graph.Coord{X: 0, Y: 0}, func(index int) {
		found = append(found, index)
	})
	assert.Empty(t, found)
}

func TestClampRange(t *testing.T) {
	lo, hi := clampRange(-1, 3, 2)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)
}
