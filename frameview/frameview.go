// Package frameview renders a single interpolated graph.Graph frame into
// the JSON shape both the HTTP service and the CLI's animate command emit,
// so the same (script, t) pair produces byte-for-byte identical output
// through either entry point.
package frameview

import "github.com/driftmap/dyng/graph"

// Frame is the wire shape of a single interpolated frame.
type Frame struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one node's position and fade state within a Frame.
type Node struct {
	ID    string  `json:"id"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Alpha float32 `json:"alpha"`
}

// Edge is one edge's endpoints and fade state within a Frame.
type Edge struct {
	ID    string  `json:"id"`
	One   string  `json:"one"`
	Two   string  `json:"two"`
	Alpha float32 `json:"alpha"`
}

// New renders frame into its JSON-ready form.
func New(frame *graph.Graph) Frame {
	nodes := frame.Nodes()
	edges := frame.Edges()
	out := Frame{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = Node{ID: n.ID.String(), X: n.Pos.X, Y: n.Pos.Y, Alpha: n.Alpha}
	}
	for i, e := range edges {
		out.Edges[i] = Edge{ID: e.ID.String(), One: e.One.String(), Two: e.Two.String(), Alpha: e.Alpha}
	}
	return out
}
