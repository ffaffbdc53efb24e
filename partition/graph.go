package partition

import "github.com/driftmap/dyng/graph"

type nodeEdges map[graph.NodeID]graph.EdgeID

// Graph is the node_partition/edge_partition specialization of the
// supergraph container: a NodePartition/EdgePartition analogue of
// graph.Graph, carrying per-element live times instead of positions.
type Graph struct {
	nodes     []NodePartition
	nodeIndex map[graph.NodeID]int

	edges     []EdgePartition
	edgeIndex map[graph.EdgeID]int

	adjacency map[graph.NodeID]nodeEdges
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[graph.NodeID]int),
		edgeIndex: make(map[graph.EdgeID]int),
		adjacency: make(map[graph.NodeID]nodeEdges),
	}
}

// Nodes returns the graph's nodes in insertion order.
func (g *Graph) Nodes() []NodePartition { return g.nodes }

// Edges returns the graph's edges in insertion order.
func (g *Graph) Edges() []EdgePartition { return g.edges }

// NodeAt returns the node partition of the given id.
func (g *Graph) NodeAt(id graph.NodeID) (*NodePartition, error) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return nil, graph.NewOutOfRangeError("node " + id.String() + " does not exist")
	}
	return &g.nodes[i], nil
}

// EdgeAt returns the edge partition of the given id.
func (g *Graph) EdgeAt(id graph.EdgeID) (*EdgePartition, error) {
	i, ok := g.edgeIndex[id]
	if !ok {
		return nil, graph.NewOutOfRangeError("edge " + id.String() + " does not exist")
	}
	return &g.edges[i], nil
}

// NodeExists reports whether a node partition of the given id is present.
func (g *Graph) NodeExists(id graph.NodeID) bool {
	_, ok := g.nodeIndex[id]
	return ok
}

// EdgeExists reports whether an edge partition of the given id is present.
func (g *Graph) EdgeExists(id graph.EdgeID) bool {
	_, ok := g.edgeIndex[id]
	return ok
}

// EdgeBetween reports whether an edge exists between one and two.
func (g *Graph) EdgeBetween(one, two graph.NodeID) (graph.EdgeID, bool) {
	neighbors, ok := g.adjacency[one]
	if !ok {
		return 0, false
	}
	id, ok := neighbors[two]
	return id, ok
}

// PushNode appends a node partition. If one of the same id exists already,
// PushNode is a no-op and returns the existing partition.
func (g *Graph) PushNode(n NodePartition) *NodePartition {
	if i, ok := g.nodeIndex[n.ID]; ok {
		return &g.nodes[i]
	}
	g.nodeIndex[n.ID] = len(g.nodes)
	g.adjacency[n.ID] = make(nodeEdges)
	g.nodes = append(g.nodes, n)
	return &g.nodes[len(g.nodes)-1]
}

// PushEdge appends an edge partition. Both endpoints must already be
// present as node partitions.
func (g *Graph) PushEdge(e EdgePartition) (*EdgePartition, error) {
	if i, ok := g.edgeIndex[e.ID]; ok {
		return &g.edges[i], nil
	}
	if !g.NodeExists(e.One) || !g.NodeExists(e.Two) {
		return nil, graph.NewInvalidGraphError("node not available")
	}
	g.adjacency[e.One][e.Two] = e.ID
	g.adjacency[e.Two][e.One] = e.ID
	g.edgeIndex[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)
	return &g.edges[len(g.edges)-1], nil
}

// CloneWithoutEdges returns a new Graph holding copies of every node
// partition (and their live times) but no edges, used when deriving RGAP's
// node space from GAP's without letting RGAP's edge-partition changes leak
// back into GAP.
func (g *Graph) CloneWithoutEdges() *Graph {
	clone := NewGraph()
	for _, n := range g.nodes {
		clone.PushNode(n)
	}
	return clone
}

// ClearNodes removes every node and edge partition.
func (g *Graph) ClearNodes() {
	g.nodes = nil
	g.nodeIndex = make(map[graph.NodeID]int)
	g.edges = nil
	g.edgeIndex = make(map[graph.EdgeID]int)
	g.adjacency = make(map[graph.NodeID]nodeEdges)
}

// ClearEdges removes every edge partition, leaving nodes in place.
func (g *Graph) ClearEdges() {
	g.edges = nil
	g.edgeIndex = make(map[graph.EdgeID]int)
	for id := range g.adjacency {
		g.adjacency[id] = make(nodeEdges)
	}
}
