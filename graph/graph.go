package graph

// nodeEdges maps a neighbor's NodeID to the EdgeID connecting it to some
// fixed node; every node in a Graph owns one of these in the adjacency
// index.
type nodeEdges map[NodeID]EdgeID

// Graph is a single static keyframe: an ordered set of nodes, an ordered set
// of edges between them, and an adjacency index used for O(1) edge lookups
// by endpoint pair. It intentionally holds no back-pointers from edges to
// nodes; callers resolve endpoints through NodeAt, which keeps a Graph
// trivially copyable.
type Graph struct {
	nodes     []Node
	nodeIndex map[NodeID]int

	edges     []Edge
	edgeIndex map[EdgeID]int

	adjacency map[NodeID]nodeEdges
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[NodeID]int),
		edgeIndex: make(map[EdgeID]int),
		adjacency: make(map[NodeID]nodeEdges),
	}
}

// Nodes returns the graph's nodes in insertion order. Callers must not
// mutate element identities through the returned slice; use PushNode and
// RemoveNode instead.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the graph's edges in insertion order. Callers must not
// mutate element identities through the returned slice; use PushEdge and
// RemoveEdge instead.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeAt returns the node of the given id.
func (g *Graph) NodeAt(id NodeID) (*Node, error) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return nil, NewOutOfRangeError("node " + id.String() + " does not exist")
	}
	return &g.nodes[i], nil
}

// EdgeAt returns the edge of the given id.
func (g *Graph) EdgeAt(id EdgeID) (*Edge, error) {
	i, ok := g.edgeIndex[id]
	if !ok {
		return nil, NewOutOfRangeError("edge " + id.String() + " does not exist")
	}
	return &g.edges[i], nil
}

// NodeIndex returns the position of the node of the given id within Nodes().
func (g *Graph) NodeIndex(id NodeID) (int, error) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return 0, NewOutOfRangeError("node " + id.String() + " does not exist")
	}
	return i, nil
}

// EdgeIndex returns the position of the edge of the given id within Edges().
func (g *Graph) EdgeIndex(id EdgeID) (int, error) {
	i, ok := g.edgeIndex[id]
	if !ok {
		return 0, NewOutOfRangeError("edge " + id.String() + " does not exist")
	}
	return i, nil
}

// NodeExists reports whether a node of the given id is present.
func (g *Graph) NodeExists(id NodeID) bool {
	_, ok := g.nodeIndex[id]
	return ok
}

// EdgeExists reports whether an edge of the given id is present.
func (g *Graph) EdgeExists(id EdgeID) bool {
	_, ok := g.edgeIndex[id]
	return ok
}

// EdgeBetween reports whether an edge exists between one and two, and
// returns its id if so. It is symmetric: EdgeBetween(a, b) agrees with
// EdgeBetween(b, a).
func (g *Graph) EdgeBetween(one, two NodeID) (EdgeID, bool) {
	neighbors, ok := g.adjacency[one]
	if !ok {
		return 0, false
	}
	id, ok := neighbors[two]
	return id, ok
}

// EdgesAtNode returns the neighbor-to-edge map for the given node.
func (g *Graph) EdgesAtNode(id NodeID) (nodeEdges, error) {
	neighbors, ok := g.adjacency[id]
	if !ok {
		return nil, NewOutOfRangeError("node " + id.String() + " does not exist")
	}
	return neighbors, nil
}

// PushNode appends a node to the graph. If a node of the same id already
// exists, PushNode is a no-op and returns the existing node.
func (g *Graph) PushNode(n Node) *Node {
	if i, ok := g.nodeIndex[n.ID]; ok {
		return &g.nodes[i]
	}
	g.nodeIndex[n.ID] = len(g.nodes)
	g.adjacency[n.ID] = make(nodeEdges)
	g.nodes = append(g.nodes, n)
	return &g.nodes[len(g.nodes)-1]
}

// PushEdge appends an edge to the graph. If an edge of the same id already
// exists, PushEdge is a no-op and returns the existing edge. Both endpoints
// must already be present in the graph.
func (g *Graph) PushEdge(e Edge) (*Edge, error) {
	if i, ok := g.edgeIndex[e.ID]; ok {
		return &g.edges[i], nil
	}
	if !g.NodeExists(e.One) || !g.NodeExists(e.Two) {
		return nil, NewInvalidGraphError("node not available")
	}
	g.adjacency[e.One][e.Two] = e.ID
	g.adjacency[e.Two][e.One] = e.ID
	g.edgeIndex[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)
	return &g.edges[len(g.edges)-1], nil
}

// RemoveNode removes the node of the given id, along with every edge
// incident to it.
func (g *Graph) RemoveNode(id NodeID) error {
	if !g.NodeExists(id) {
		return NewInvalidGraphError("node not available")
	}
	g.removeEdgesIf(func(e Edge) bool { return e.One == id || e.Two == id })
	delete(g.adjacency, id)
	g.removeNodesIf(func(n Node) bool { return n.ID == id })
	return nil
}

// RemoveEdge removes the edge of the given id.
func (g *Graph) RemoveEdge(id EdgeID) error {
	if !g.EdgeExists(id) {
		return NewInvalidGraphError("edge not available")
	}
	g.removeEdgesIf(func(e Edge) bool { return e.ID == id })
	return nil
}

// ClearNodes removes every node, every edge, and the adjacency index.
func (g *Graph) ClearNodes() {
	g.nodes = nil
	g.nodeIndex = make(map[NodeID]int)
	g.edges = nil
	g.edgeIndex = make(map[EdgeID]int)
	g.adjacency = make(map[NodeID]nodeEdges)
}

// ClearEdges removes every edge but leaves nodes and the (now empty)
// adjacency entries in place.
func (g *Graph) ClearEdges() {
	g.edges = nil
	g.edgeIndex = make(map[EdgeID]int)
	for id := range g.adjacency {
		g.adjacency[id] = make(nodeEdges)
	}
}

// Clone returns an independent copy of g: mutating the result never
// affects g, and vice versa.
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for _, n := range g.nodes {
		clone.PushNode(n)
	}
	for _, e := range g.edges {
		_, _ = clone.PushEdge(e)
	}
	return clone
}

// removeEdgesIf filters out every edge for which remove returns true,
// repairing the adjacency index and rebuilding edgeIndex from scratch
// afterward.
func (g *Graph) removeEdgesIf(remove func(Edge) bool) {
	kept := g.edges[:0]
	for _, e := range g.edges {
		if remove(e) {
			if neighbors, ok := g.adjacency[e.One]; ok {
				delete(neighbors, e.Two)
			}
			if neighbors, ok := g.adjacency[e.Two]; ok {
				delete(neighbors, e.One)
			}
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.edgeIndex = make(map[EdgeID]int, len(g.edges))
	for i, e := range g.edges {
		g.edgeIndex[e.ID] = i
	}
}

// removeNodesIf filters out every node for which remove returns true,
// rebuilding nodeIndex from scratch afterward. It does not touch edges or
// the adjacency index; callers are expected to have already removed
// incident edges via removeEdgesIf.
func (g *Graph) removeNodesIf(remove func(Node) bool) {
	kept := g.nodes[:0]
	for _, n := range g.nodes {
		if remove(n) {
			continue
		}
		kept = append(kept, n)
	}
	g.nodes = kept
	g.nodeIndex = make(map[NodeID]int, len(g.nodes))
	for i, n := range g.nodes {
		g.nodeIndex[n.ID] = i
	}
}
