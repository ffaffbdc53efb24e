package partition

import "github.com/driftmap/dyng/graph"

// MappedGraph wraps a partition Graph and lets additional ids alias an
// existing node or edge partition, single-hop. RGAP construction uses this
// to merge a partition's representative element into the id space of every
// partition it absorbs, without needing to renumber anything.
type MappedGraph struct {
	g       *Graph
	nodeMap map[graph.NodeID]graph.NodeID
	edgeMap map[graph.EdgeID]graph.EdgeID
}

// NewMappedGraph wraps g.
func NewMappedGraph(g *Graph) *MappedGraph {
	return &MappedGraph{
		g:       g,
		nodeMap: make(map[graph.NodeID]graph.NodeID),
		edgeMap: make(map[graph.EdgeID]graph.EdgeID),
	}
}

// Graph returns the underlying partition graph.
func (m *MappedGraph) Graph() *Graph { return m.g }

// NodeAt resolves id through the alias table first, falling back to the
// underlying graph if no alias was registered.
func (m *MappedGraph) NodeAt(id graph.NodeID) (*NodePartition, error) {
	if target, ok := m.nodeMap[id]; ok {
		return m.g.NodeAt(target)
	}
	return m.g.NodeAt(id)
}

// EdgeAt resolves id through the alias table first, falling back to the
// underlying graph if no alias was registered.
func (m *MappedGraph) EdgeAt(id graph.EdgeID) (*EdgePartition, error) {
	if target, ok := m.edgeMap[id]; ok {
		return m.g.EdgeAt(target)
	}
	return m.g.EdgeAt(id)
}

// MapNode associates id with the node partition already stored at target.
func (m *MappedGraph) MapNode(id, target graph.NodeID) { m.nodeMap[id] = target }

// MapEdge associates id with the edge partition already stored at target.
func (m *MappedGraph) MapEdge(id, target graph.EdgeID) { m.edgeMap[id] = target }

// CloneNodeGraph returns a MappedGraph over a copy of the underlying
// graph's node partitions (no edges) with the same node alias table, for
// callers that need to rebuild edge partitioning without disturbing the
// graph it was derived from.
func (m *MappedGraph) CloneNodeGraph() *MappedGraph {
	clone := NewMappedGraph(m.g.CloneWithoutEdges())
	for k, v := range m.nodeMap {
		clone.nodeMap[k] = v
	}
	return clone
}

// ClearNodes clears both the underlying graph's nodes and the node alias
// table.
func (m *MappedGraph) ClearNodes() {
	m.g.ClearNodes()
	m.nodeMap = make(map[graph.NodeID]graph.NodeID)
}

// ClearEdges clears both the underlying graph's edges and the edge alias
// table.
func (m *MappedGraph) ClearEdges() {
	m.g.ClearEdges()
	m.edgeMap = make(map[graph.EdgeID]graph.EdgeID)
}
