package graph

// Node is a single vertex within one keyframe. Its position is owned by the
// layout stage; isNew/isOld are set while building a keyframe sequence and
// consumed by the interpolator to drive appear/disappear fades.
type Node struct {
	ID    NodeID
	Pos   Coord
	Alpha float32

	IsNew bool
	IsOld bool
}

// NewNode returns a Node at the origin, fully opaque, with no lifecycle
// flags set.
func NewNode(id NodeID) Node {
	return Node{ID: id, Pos: Coord{}, Alpha: 1.0}
}
