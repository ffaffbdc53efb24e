package layout

import (
	"math"

	"github.com/driftmap/dyng/graph"
)

const (
	smallOffset = 0.001
	unitCoeff   = 0.68
)

// ForceDirectedLayout is the default StaticLayout: a Fruchterman-Reingold
// placement with border repulsion, grid-accelerated local repulsion, and a
// two-pass coarse/fine annealing schedule.
type ForceDirectedLayout struct {
	BorderForceCoeff   float32
	KCoeff             float32
	UseGlobalRepulsion bool

	FirstCooling  Cooling
	SecondCooling Cooling
}

// NewForceDirectedLayout returns a ForceDirectedLayout configured with the
// coefficients and two-pass cooling schedule used throughout the engine's
// own layout calls.
func NewForceDirectedLayout() *ForceDirectedLayout {
	return &ForceDirectedLayout{
		BorderForceCoeff:   0.6,
		KCoeff:             0.6,
		UseGlobalRepulsion: false,
		FirstCooling:       defaultFirstCooling(),
		SecondCooling:      defaultSecondCooling(),
	}
}

// RelativeUnit converts a fraction of the canvas diagonal into absolute
// canvas units; Iteration's temperature argument is expressed in this unit.
func (l *ForceDirectedLayout) RelativeUnit(width, height float32) float32 {
	return hypot(width, height) * unitCoeff
}

// Layout places nodes on an initial circle around the canvas center, then
// runs the coarse and fine annealing passes in sequence.
func (l *ForceDirectedLayout) Layout(g *graph.Graph, width, height float32) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}
	placeInitialCircle(nodes, width, height)
	l.pass(g, width, height, l.FirstCooling)
	l.pass(g, width, height, l.SecondCooling)
}

func (l *ForceDirectedLayout) pass(g *graph.Graph, width, height float32, c Cooling) {
	t := c.StartTemperature
	for r := uint(0); r < c.Iterations; r++ {
		l.Iteration(g, width, height, t)
		t = c.Anneal(t)
	}
}

// Iteration performs a single round: border repulsion reset, pairwise node
// repulsion, edge attraction, and clamped displacement. temperature is in
// the [0, 1]-ish fraction-of-diagonal unit; it is converted to absolute
// canvas units via RelativeUnit before being used as a displacement cap.
func (l *ForceDirectedLayout) Iteration(g *graph.Graph, width, height, temperature float32) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}
	area := width * height
	k := l.KCoeff * sqrt32(area/float32(len(nodes)))
	temp := temperature * l.RelativeUnit(width, height)

	disp := make([]graph.Coord, len(nodes))
	for i, n := range nodes {
		disp[i] = graph.Coord{
			X: l.borderDisplacement(k, width, n.Pos.X),
			Y: l.borderDisplacement(k, height, n.Pos.Y),
		}
	}

	l.repulsiveForces(g, width, height, k, temp, disp)
	l.attractiveForces(g, k, disp)
	applyDisplacement(nodes, width, height, temp, disp)
}

// borderDisplacement computes the net repulsion along one axis away from
// both canvas borders, for a node at coordinate c on an axis of size dim.
func (l *ForceDirectedLayout) borderDisplacement(k, dim, c float32) float32 {
	displace := func(coord, size float32) float32 {
		return (k * k * l.BorderForceCoeff) / (abs32(size*0.5-coord) + abs32(size*smallOffset))
	}
	return displace(-c, dim) - displace(c, dim)
}

func (l *ForceDirectedLayout) repulsiveForces(
	g *graph.Graph,
	width, height, k, temp float32,
	disp []graph.Coord,
) {
	nodes := g.Nodes()
	rng := newXorshift(0)

	apply := func(i, j int) {
		diffX := nodes[j].Pos.X - nodes[i].Pos.X
		diffY := nodes[j].Pos.Y - nodes[i].Pos.Y
		dst := hypot(diffX, diffY)
		if dst == 0 {
			angle := float64(rng.float32()) * 2 * math.Pi
			r := temp * 0.5
			dx := cos32(angle) * r
			dy := sin32(angle) * r
			disp[i].X -= dx
			disp[i].Y -= dy
			disp[j].X += dx
			disp[j].Y += dy
			return
		}
		if l.UseGlobalRepulsion || dst < k*2.0 {
			repForce := (1.0 / dst) * (k * k / dst)
			disp[i].X -= diffX * repForce
			disp[i].Y -= diffY * repForce
			disp[j].X += diffX * repForce
			disp[j].Y += diffY * repForce
		}
	}

	if l.UseGlobalRepulsion {
		for i := range nodes {
			for j := 0; j < i; j++ {
				apply(i, j)
			}
		}
		return
	}

	grid := newSpatialGrid(width, height, k)
	for i, n := range nodes {
		grid.add(n.Pos, i)
	}
	for i, n := range nodes {
		grid.forEachAround(n.Pos, func(j int) {
			if j < i {
				apply(i, j)
			}
		})
	}
}

func (l *ForceDirectedLayout) attractiveForces(g *graph.Graph, k float32, disp []graph.Coord) {
	nodes := g.Nodes()
	for _, e := range g.Edges() {
		oneIdx, err := g.NodeIndex(e.One)
		if err != nil {
			continue
		}
		twoIdx, err := g.NodeIndex(e.Two)
		if err != nil {
			continue
		}
		diffX := nodes[twoIdx].Pos.X - nodes[oneIdx].Pos.X
		diffY := nodes[twoIdx].Pos.Y - nodes[oneIdx].Pos.Y
		dst := hypot(diffX, diffY)
		if dst == 0 {
			continue
		}
		attrForce := (1.0 / dst) * (dst * dst / k)
		disp[oneIdx].X += diffX * attrForce
		disp[oneIdx].Y += diffY * attrForce
		disp[twoIdx].X -= diffX * attrForce
		disp[twoIdx].Y -= diffY * attrForce
	}
}

func applyDisplacement(nodes []graph.Node, width, height, t float32, disp []graph.Coord) {
	clamp := func(size, coord float32) float32 {
		if coord > size {
			return size
		}
		if coord < -size {
			return -size
		}
		return coord
	}
	for i := range nodes {
		d := disp[i]
		dispLen := hypot(d.X, d.Y)
		if dispLen != 0 {
			scale := minFloat32(dispLen, t) / dispLen
			nodes[i].Pos.X += scale * d.X
			nodes[i].Pos.Y += scale * d.Y
		}
		nodes[i].Pos.X = clamp(width*0.5, nodes[i].Pos.X)
		nodes[i].Pos.Y = clamp(height*0.5, nodes[i].Pos.Y)
	}
}

func placeInitialCircle(nodes []graph.Node, width, height float32) {
	radius := minFloat32(width, height) * 0.333
	angle := 2.0 * math.Pi / float64(len(nodes))
	for i := range nodes {
		a := float64(i) * angle
		nodes[i].Pos.X = float32(math.Cos(a)) * radius
		nodes[i].Pos.Y = float32(math.Sin(a)) * radius
	}
}

func sqrt32(v float32) float32 { return float32(math.Sqrt(float64(v))) }
func cos32(v float64) float32  { return float32(math.Cos(v)) }
func sin32(v float64) float32  { return float32(math.Sin(v)) }

func hypot(a, b float32) float32 {
	return float32(math.Sqrt(float64(a)*float64(a) + float64(b)*float64(b)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// xorshift32 is a small deterministic PRNG seeded fresh at the start of
// every repulsive-force pass, so the rare exact-zero-distance nudge is
// reproducible across runs and across the sequential/parallel tolerance
// implementations.
type xorshift32 struct{ state uint32 }

func newXorshift(seed uint32) *xorshift32 {
	if seed == 0 {
		seed = 1
	}
	return &xorshift32{state: seed}
}

func (x *xorshift32) next() uint32 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 17
	x.state ^= x.state << 5
	return x.state
}

// float32 returns a value uniformly distributed in [0, 1).
func (x *xorshift32) float32() float32 {
	return float32(x.next()%1_000_000) / 1_000_000
}
