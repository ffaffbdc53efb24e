package partition

import "github.com/driftmap/dyng/graph"

// NodePartition is a supergraph node annotated with the set of keyframe
// indices at which it exists. ForesightedLayout groups nodes into
// partitions whose members all share a pairwise-disjoint LiveTime.
type NodePartition struct {
	ID  graph.NodeID
	Pos graph.Coord

	liveTime LiveSet
}

// NewNodePartition returns a NodePartition with an empty live time.
func NewNodePartition(id graph.NodeID) NodePartition {
	return NodePartition{ID: id}
}

// AddLiveTime merges additional live times into the partition's own.
func (p *NodePartition) AddLiveTime(live *LiveSet) { p.liveTime.Join(live) }

// LiveTime returns the partition's live time.
func (p *NodePartition) LiveTime() *LiveSet { return &p.liveTime }

// EdgePartition is a supergraph edge annotated with the set of keyframe
// indices at which it exists.
type EdgePartition struct {
	ID  graph.EdgeID
	One graph.NodeID
	Two graph.NodeID

	liveTime LiveSet
}

// NewEdgePartition returns an EdgePartition with an empty live time.
func NewEdgePartition(id graph.EdgeID, one, two graph.NodeID) EdgePartition {
	return EdgePartition{ID: id, One: one, Two: two}
}

// AddLiveTime merges additional live times into the partition's own.
func (p *EdgePartition) AddLiveTime(live *LiveSet) { p.liveTime.Join(live) }

// LiveTime returns the partition's live time.
func (p *EdgePartition) LiveTime() *LiveSet { return &p.liveTime }
