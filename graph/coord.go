package graph

// Coord is a 2-D point. float32 matches the precision the force-directed
// layout's floating-point associativity guarantees rely on (see
// layout.StaticLayout and the parallel tolerance pass).
type Coord struct {
	X, Y float32
}
