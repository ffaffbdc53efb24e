package graph

// Edge connects two nodes by id. It does not hold pointers to its endpoints:
// callers resolve One/Two through the owning Graph, which keeps a keyframe
// free of cyclic references and safe to copy.
type Edge struct {
	ID  EdgeID
	One NodeID
	Two NodeID

	Alpha float32

	IsNew bool
	IsOld bool
}

// NewEdge returns a fully opaque Edge between one and two, with no lifecycle
// flags set.
func NewEdge(id EdgeID, one, two NodeID) Edge {
	return Edge{ID: id, One: one, Two: two, Alpha: 1.0}
}
