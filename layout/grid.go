// Package layout implements static force-directed placement and the
// foresighted-with-tolerance orchestration that turns a sequence of
// keyframe graphs into a sequence of laid-out keyframes sharing a common
// frame of reference.
package layout

import (
	"math"

	"github.com/driftmap/dyng/graph"
)

// spatialGrid buckets node indices by position into cells of side 2k, so
// repulsive-force computation only has to examine nodes within one cell of
// each other instead of every pair.
type spatialGrid struct {
	w, h, twoK   float32
	gridW, gridH int
	cells        [][]int
}

func newSpatialGrid(w, h, k float32) *spatialGrid {
	g := &spatialGrid{}
	g.reset(w, h, k)
	return g
}

func (g *spatialGrid) reset(w, h, k float32) {
	g.twoK = 2.0 * k
	g.w = w
	g.h = h
	g.gridW = int(math.Ceil(float64(w / g.twoK)))
	g.gridH = int(math.Ceil(float64(h / g.twoK)))
	if g.gridW < 1 {
		g.gridW = 1
	}
	if g.gridH < 1 {
		g.gridH = 1
	}
	g.cells = make([][]int, g.gridW*g.gridH)
}

func (g *spatialGrid) cellIndex(pos graph.Coord) (int, int) {
	x := int(math.Floor(float64((pos.X + g.w*0.5) / g.twoK)))
	y := int(math.Floor(float64((pos.Y + g.h*0.5) / g.twoK)))
	return x, y
}

func (g *spatialGrid) add(pos graph.Coord, index int) {
	x, y := g.cellIndex(pos)
	i := g.at(x, y)
	g.cells[i] = append(g.cells[i], index)
}

// forEachAround calls fn once for every index stored in pos's cell and the
// eight cells surrounding it, clamped to the grid's bounds.
func (g *spatialGrid) forEachAround(pos graph.Coord, fn func(index int)) {
	px, py := g.cellIndex(pos)
	minY, maxY := clampRange(py-1, py+1, g.gridH-1)
	minX, maxX := clampRange(px-1, px+1, g.gridW-1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for _, idx := range g.cells[g.at(x, y)] {
				fn(idx)
			}
		}
	}
}

func (g *spatialGrid) at(x, y int) int { return y*g.gridW + x }

func clampRange(lo, hi, max int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > max {
		hi = max
	}
	return lo, hi
}
